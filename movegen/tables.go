// Package movegen implements the legal move generator: pseudo-legal
// generation per piece type, followed by a make/verify/unmake
// legality filter, over precomputed knight/king/pawn attack tables
// and a ray-scan attack query. It is a stateless service over a
// core.Position - generation never observably mutates its input.
package movegen

import "github.com/lattice-chess/corechess/core"

var (
	knightAttacks                      [64]core.Bitboard
	kingAttacks                        [64]core.Bitboard
	whitePawnAttacks, blackPawnAttacks [64]core.Bitboard
)

func init() {
	for sq := 0; sq < 64; sq++ {
		b := core.SquareMask[sq]

		whitePawnAttacks[sq] = core.Up(core.Left(b) | core.Right(b))
		blackPawnAttacks[sq] = core.Down(core.Left(b) | core.Right(b))

		knightAttacks[sq] = core.Right(core.UpRight(b)) | core.Up(core.UpRight(b)) |
			core.Up(core.UpLeft(b)) | core.Left(core.UpLeft(b)) |
			core.Left(core.DownLeft(b)) | core.Down(core.DownLeft(b)) |
			core.Down(core.DownRight(b)) | core.Right(core.DownRight(b))

		kingAttacks[sq] = core.UpRight(b) | core.Up(b) | core.UpLeft(b) | core.Left(b) |
			core.DownLeft(b) | core.Down(b) | core.DownRight(b) | core.Right(b)
	}
}

// pawnAttacks returns the squares a pawn of side c on sq attacks.
func pawnAttacks(sq int, c core.Color) core.Bitboard {
	if c == core.White {
		return whitePawnAttacks[sq]
	}
	return blackPawnAttacks[sq]
}

// rookDirs and bishopDirs are the one-step shift functions for each sliding piece's
// direction set. Sliding attacks are computed by a ray-scan walk
// rather than a magic-bitboard lookup: magic bitboards are an
// explicit non-goal of this generator (simplicity over raw throughput
// is the stated tradeoff), even though they are the natural next step
// were this ever wired into a real search.
var (
	rookDirs   = [4]func(core.Bitboard) core.Bitboard{core.Up, core.Down, core.Left, core.Right}
	bishopDirs = [4]func(core.Bitboard) core.Bitboard{core.UpRight, core.UpLeft, core.DownRight, core.DownLeft}
)

func slideAttacks(sq int, occ core.Bitboard, dirs [4]func(core.Bitboard) core.Bitboard) core.Bitboard {
	var result core.Bitboard
	for _, step := range dirs {
		x := step(core.SquareMask[sq])
		for x != 0 {
			result |= x
			if x&occ != 0 {
				break
			}
			x = step(x)
		}
	}
	return result
}

func bishopAttacks(sq int, occ core.Bitboard) core.Bitboard { return slideAttacks(sq, occ, bishopDirs) }
func rookAttacks(sq int, occ core.Bitboard) core.Bitboard   { return slideAttacks(sq, occ, rookDirs) }
func queenAttacks(sq int, occ core.Bitboard) core.Bitboard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}
