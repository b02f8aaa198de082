package movegen

import "github.com/lattice-chess/corechess/core"

// IsSquareAttacked reports whether any piece of color by attacks sq.
//
// Pawn attacks are looked up through the precomputed shift-built
// attack tables (pawnAttacks(sq, by.Opposite())) rather than by
// testing square±7/square±9 directly. The direct-arithmetic form is
// the one flagged as suspect: an attacker on the wrong side of the
// board can alias onto sq through 64-bit wraparound unless the check
// also bounds the attacker's rank, not just its file. Table lookup
// side-steps the issue entirely, since Up/Down never wrap (they are
// bitwise shifts, not modular square arithmetic) and the tables are
// built once from those shifts at init time.
func IsSquareAttacked(pos *core.Position, sq core.Square, by core.Color) bool {
	s := int(sq)
	enemyPawns := pos.Bitboard(by, core.Pawn)
	if pawnAttacks(s, by.Opposite())&enemyPawns != 0 {
		return true
	}
	if knightAttacks[s]&pos.Bitboard(by, core.Knight) != 0 {
		return true
	}
	if kingAttacks[s]&pos.Bitboard(by, core.King) != 0 {
		return true
	}
	occ := pos.OccupancyAll()
	bishopsQueens := pos.Bitboard(by, core.Bishop) | pos.Bitboard(by, core.Queen)
	if bishopAttacks(s, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pos.Bitboard(by, core.Rook) | pos.Bitboard(by, core.Queen)
	if rookAttacks(s, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// AttackersTo returns the bitboard of every piece, of either color,
// that attacks sq - the union query IsSquareAttacked tests one color
// at a time.
func AttackersTo(pos *core.Position, sq core.Square) core.Bitboard {
	s := int(sq)
	occ := pos.OccupancyAll()
	return (whitePawnAttacks[s] & pos.Bitboard(core.Black, core.Pawn)) |
		(blackPawnAttacks[s] & pos.Bitboard(core.White, core.Pawn)) |
		(knightAttacks[s] & (pos.Bitboard(core.White, core.Knight) | pos.Bitboard(core.Black, core.Knight))) |
		(kingAttacks[s] & (pos.Bitboard(core.White, core.King) | pos.Bitboard(core.Black, core.King))) |
		(bishopAttacks(s, occ) & (pos.Bitboard(core.White, core.Bishop) | pos.Bitboard(core.Black, core.Bishop) |
			pos.Bitboard(core.White, core.Queen) | pos.Bitboard(core.Black, core.Queen))) |
		(rookAttacks(s, occ) & (pos.Bitboard(core.White, core.Rook) | pos.Bitboard(core.Black, core.Rook) |
			pos.Bitboard(core.White, core.Queen) | pos.Bitboard(core.Black, core.Queen)))
}

// InCheck reports whether color's king is currently attacked.
func InCheck(pos *core.Position, color core.Color) bool {
	kingBB := pos.Bitboard(color, core.King)
	if kingBB == 0 {
		return false
	}
	return IsSquareAttacked(pos, core.Square(core.FirstOne(kingBB)), color.Opposite())
}
