package movegen

import "github.com/lattice-chess/corechess/core"

const (
	f1g1Mask = core.Bitboard(1)<<core.F1 | core.Bitboard(1)<<core.G1
	b1d1Mask = core.Bitboard(1)<<core.B1 | core.Bitboard(1)<<core.C1 | core.Bitboard(1)<<core.D1
	f8g8Mask = core.Bitboard(1)<<core.F8 | core.Bitboard(1)<<core.G8
	b8d8Mask = core.Bitboard(1)<<core.B8 | core.Bitboard(1)<<core.C8 | core.Bitboard(1)<<core.D8
)

// Generate returns the complete set of legal moves for
// pos.SideToMove(). It is a two-pass pseudo-legal-then-verify
// generator: piece-type rules produce a candidate buffer, then each
// candidate is played, checked for king safety, and unplayed. Magic
// bitboards, pin detection and other incremental-legality tricks are
// deliberately not used - this trades raw throughput for an
// implementation whose correctness is easy to audit against perft.
//
// Generate never observably mutates pos: every candidate is made and
// unmade in turn, so pos is bit-identical on return to what it was on
// entry.
func Generate(pos *core.Position) []core.Move {
	candidates := make([]core.Move, 0, core.MaxMoves)
	candidates = appendPseudoLegal(candidates, pos)

	legal := make([]core.Move, 0, len(candidates))
	us := pos.SideToMove()
	for _, m := range candidates {
		pos.Make(m)
		inCheck := InCheck(pos, us)
		pos.Unmake()
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

func appendPseudoLegal(ml []core.Move, pos *core.Position) []core.Move {
	us := pos.SideToMove()
	them := us.Opposite()
	ownAll := pos.Occupancy(us)
	oppAll := pos.Occupancy(them)
	allAll := pos.OccupancyAll()

	ml = appendPawnMoves(ml, pos, us, ownAll, oppAll, allAll)
	ml = appendStepMoves(ml, pos, us, ownAll, oppAll, core.Knight, knightAttacks[:])
	ml = appendSliderMoves(ml, pos, us, ownAll, oppAll, allAll, core.Bishop, bishopAttacks)
	ml = appendSliderMoves(ml, pos, us, ownAll, oppAll, allAll, core.Rook, rookAttacks)
	ml = appendSliderMoves(ml, pos, us, ownAll, oppAll, allAll, core.Queen, queenAttacks)
	ml = appendStepMoves(ml, pos, us, ownAll, oppAll, core.King, kingAttacks[:])
	ml = appendCastles(ml, pos, us, allAll)
	return ml
}

func capturedAt(pos *core.Position, sq core.Square) core.PieceType {
	_, pt, ok := pos.PieceAt(sq)
	if !ok {
		return core.Empty
	}
	return pt
}

func appendPawnMoves(ml []core.Move, pos *core.Position, us core.Color, ownAll, oppAll, allAll core.Bitboard) []core.Move {
	pawns := pos.Bitboard(us, core.Pawn)
	dir := 8
	startRank := core.Rank2
	promoRank := core.Rank7
	if us == core.Black {
		dir = -8
		startRank = core.Rank7
		promoRank = core.Rank2
	}

	for fromBB := pawns; fromBB != 0; fromBB &= fromBB - 1 {
		from := core.Square(core.FirstOne(fromBB))
		onPromoRank := core.Rank(from) == promoRank
		to := from + core.Square(dir)

		if core.SquareMask[to]&allAll == 0 {
			if onPromoRank {
				ml = appendPromotions(ml, from, to, core.Empty)
			} else {
				ml = append(ml, core.NewQuietMove(from, to, core.Pawn))
				if core.Rank(from) == startRank {
					to2 := from + core.Square(2*dir)
					if core.SquareMask[to2]&allAll == 0 {
						ml = append(ml, core.NewQuietMove(from, to2, core.Pawn))
					}
				}
			}
		}

		if core.File(from) > core.FileA {
			capSq := from + core.Square(dir) - 1
			ml = appendPawnCapture(ml, pos, us, capSq, from, onPromoRank, oppAll)
		}
		if core.File(from) < core.FileH {
			capSq := from + core.Square(dir) + 1
			ml = appendPawnCapture(ml, pos, us, capSq, from, onPromoRank, oppAll)
		}
	}
	return ml
}

func appendPawnCapture(ml []core.Move, pos *core.Position, us core.Color, to, from core.Square, onPromoRank bool, oppAll core.Bitboard) []core.Move {
	if core.SquareMask[to]&oppAll != 0 {
		captured := capturedAt(pos, to)
		if onPromoRank {
			return appendPromotions(ml, from, to, captured)
		}
		return append(ml, core.NewCaptureMove(from, to, core.Pawn, captured))
	}
	if to == pos.EpSquare() {
		return append(ml, core.NewEnPassantMove(from, to))
	}
	return ml
}

func appendPromotions(ml []core.Move, from, to core.Square, captured core.PieceType) []core.Move {
	for _, promo := range [4]core.PieceType{core.Queen, core.Rook, core.Bishop, core.Knight} {
		ml = append(ml, core.NewPromotionMove(from, to, captured, promo))
	}
	return ml
}

func appendStepMoves(ml []core.Move, pos *core.Position, us core.Color, ownAll, oppAll core.Bitboard, pt core.PieceType, table []core.Bitboard) []core.Move {
	for fromBB := pos.Bitboard(us, pt); fromBB != 0; fromBB &= fromBB - 1 {
		from := core.FirstOne(fromBB)
		for toBB := table[from] &^ ownAll; toBB != 0; toBB &= toBB - 1 {
			to := core.FirstOne(toBB)
			ml = append(ml, makeStep(pos, core.Square(from), core.Square(to), pt, oppAll))
		}
	}
	return ml
}

func appendSliderMoves(ml []core.Move, pos *core.Position, us core.Color, ownAll, oppAll, allAll core.Bitboard, pt core.PieceType, attacksFn func(int, core.Bitboard) core.Bitboard) []core.Move {
	for fromBB := pos.Bitboard(us, pt); fromBB != 0; fromBB &= fromBB - 1 {
		from := core.FirstOne(fromBB)
		for toBB := attacksFn(from, allAll) &^ ownAll; toBB != 0; toBB &= toBB - 1 {
			to := core.FirstOne(toBB)
			ml = append(ml, makeStep(pos, core.Square(from), core.Square(to), pt, oppAll))
		}
	}
	return ml
}

func makeStep(pos *core.Position, from, to core.Square, pt core.PieceType, oppAll core.Bitboard) core.Move {
	if core.SquareMask[to]&oppAll != 0 {
		return core.NewCaptureMove(from, to, pt, capturedAt(pos, to))
	}
	return core.NewQuietMove(from, to, pt)
}

func appendCastles(ml []core.Move, pos *core.Position, us core.Color, allAll core.Bitboard) []core.Move {
	rights := pos.CastlingRights()
	if InCheck(pos, us) {
		return ml
	}
	// The king's current square is already covered by the InCheck
	// guard above, and the landing square is covered by the generic
	// make/verify filter the caller applies to every candidate this
	// function returns. Only the square the king crosses in between
	// needs an explicit pre-check here - otherwise "castle through
	// check" would slip past both of those and only "castle into
	// check" would be caught.
	if us == core.White {
		if rights&core.WhiteKingSide != 0 &&
			allAll&f1g1Mask == 0 &&
			!IsSquareAttacked(pos, core.F1, core.Black) {
			ml = append(ml, core.NewCastleMove(core.E1, core.G1))
		}
		if rights&core.WhiteQueenSide != 0 &&
			allAll&b1d1Mask == 0 &&
			!IsSquareAttacked(pos, core.D1, core.Black) {
			ml = append(ml, core.NewCastleMove(core.E1, core.C1))
		}
	} else {
		if rights&core.BlackKingSide != 0 &&
			allAll&f8g8Mask == 0 &&
			!IsSquareAttacked(pos, core.F8, core.White) {
			ml = append(ml, core.NewCastleMove(core.E8, core.G8))
		}
		if rights&core.BlackQueenSide != 0 &&
			allAll&b8d8Mask == 0 &&
			!IsSquareAttacked(pos, core.D8, core.White) {
			ml = append(ml, core.NewCastleMove(core.E8, core.C8))
		}
	}
	return ml
}
