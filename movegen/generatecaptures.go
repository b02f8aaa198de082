package movegen

import "github.com/lattice-chess/corechess/core"

// GenerateCaptures returns the legal capturing moves (including
// en passant and capture-promotions) for pos.SideToMove(). It is not
// named in spec.md's move generator, but is grounded on the teacher's
// GenerateCaptures in common/movegen.go, which exists there to feed a
// quiescence search. That consumer is out of scope here - this is
// offered as a building block a caller can use to avoid generating and
// discarding quiet moves (perft's own Count never needs it; it is
// intended for a future search or a UCI extension).
//
// Like Generate, the teacher's genChecks branch - which also appends
// quiet checking moves, not just captures, to support search move
// ordering - is deliberately dropped. Discovered-check detection needs
// per-square "is this piece pinned to the king's attack ray" data that
// only a search's move orderer would use; nothing in this module's
// scope consumes it.
func GenerateCaptures(pos *core.Position) []core.Move {
	candidates := make([]core.Move, 0, core.MaxMoves)
	candidates = appendPseudoLegalCaptures(candidates, pos)

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

func appendPseudoLegalCaptures(ml []core.Move, pos *core.Position) []core.Move {
	us := pos.SideToMove()
	them := us.Opposite()
	oppAll := pos.Occupancy(them)
	allAll := pos.OccupancyAll()

	ml = appendPawnCaptures(ml, pos, us, oppAll, allAll)
	ml = appendStepCaptures(ml, pos, us, oppAll, core.Knight, knightAttacks[:])
	ml = appendSliderCaptures(ml, pos, us, oppAll, allAll, core.Bishop, bishopAttacks)
	ml = appendSliderCaptures(ml, pos, us, oppAll, allAll, core.Rook, rookAttacks)
	ml = appendSliderCaptures(ml, pos, us, oppAll, allAll, core.Queen, queenAttacks)
	ml = appendStepCaptures(ml, pos, us, oppAll, core.King, kingAttacks[:])
	return ml
}

func appendPawnCaptures(ml []core.Move, pos *core.Position, us core.Color, oppAll, allAll core.Bitboard) []core.Move {
	pawns := pos.Bitboard(us, core.Pawn)
	dir := 8
	promoRank := core.Rank7
	if us == core.Black {
		dir = -8
		promoRank = core.Rank2
	}

	for fromBB := pawns; fromBB != 0; fromBB &= fromBB - 1 {
		from := core.Square(core.FirstOne(fromBB))
		onPromoRank := core.Rank(from) == promoRank

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

func appendStepCaptures(ml []core.Move, pos *core.Position, us core.Color, oppAll core.Bitboard, pt core.PieceType, table []core.Bitboard) []core.Move {
	for fromBB := pos.Bitboard(us, pt); fromBB != 0; fromBB &= fromBB - 1 {
		from := core.FirstOne(fromBB)
		for toBB := table[from] & oppAll; toBB != 0; toBB &= toBB - 1 {
			to := core.FirstOne(toBB)
			ml = append(ml, core.NewCaptureMove(core.Square(from), core.Square(to), pt, capturedAt(pos, core.Square(to))))
		}
	}
	return ml
}

func appendSliderCaptures(ml []core.Move, pos *core.Position, us core.Color, oppAll, allAll core.Bitboard, pt core.PieceType, attacksFn func(int, core.Bitboard) core.Bitboard) []core.Move {
	for fromBB := pos.Bitboard(us, pt); fromBB != 0; fromBB &= fromBB - 1 {
		from := core.FirstOne(fromBB)
		for toBB := attacksFn(from, allAll) & oppAll; toBB != 0; toBB &= toBB - 1 {
			to := core.FirstOne(toBB)
			ml = append(ml, core.NewCaptureMove(core.Square(from), core.Square(to), pt, capturedAt(pos, core.Square(to))))
		}
	}
	return ml
}
