package core

import "strings"

// Move is an immutable packed move value:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-14: moving piece (pre-promotion)
//	bits 15-17: captured piece (Empty if none)
//	bits 18-20: promotion piece (Empty if not a promotion)
//	bits 21-22: special flag: 0 normal, 1 en passant, 2 castle
type Move int32

const MoveEmpty Move = 0

const (
	specialNormal = iota
	specialEnPassant
	specialCastle
)

func makeMove(from, to Square, piece, captured PieceType, special int) Move {
	return Move(from) |
		Move(to)<<6 |
		Move(piece)<<12 |
		Move(captured)<<15 |
		Move(special)<<21
}

func makePromotion(from, to Square, captured, promotion PieceType) Move {
	return Move(from) |
		Move(to)<<6 |
		Move(Pawn)<<12 |
		Move(captured)<<15 |
		Move(promotion)<<18
}

// NewQuietMove, NewCaptureMove, NewEnPassantMove, NewCastleMove and
// NewPromotionMove are the move generator's only way to construct a
// Move - the bit layout above stays private to this file.
func NewQuietMove(from, to Square, piece PieceType) Move {
	return makeMove(from, to, piece, Empty, specialNormal)
}

func NewCaptureMove(from, to Square, piece, captured PieceType) Move {
	return makeMove(from, to, piece, captured, specialNormal)
}

func NewEnPassantMove(from, to Square) Move {
	return makeMove(from, to, Pawn, Pawn, specialEnPassant)
}

func NewCastleMove(from, to Square) Move {
	return makeMove(from, to, King, Empty, specialCastle)
}

func NewPromotionMove(from, to Square, captured, promotion PieceType) Move {
	return makePromotion(from, to, captured, promotion)
}

func (m Move) From() Square           { return Square(m & 63) }
func (m Move) To() Square             { return Square((m >> 6) & 63) }
func (m Move) Piece() PieceType       { return PieceType((m >> 12) & 7) }
func (m Move) CapturedPiece() PieceType { return PieceType((m >> 15) & 7) }
func (m Move) Promotion() PieceType   { return PieceType((m >> 18) & 7) }

func (m Move) IsCapture() bool    { return m.CapturedPiece() != Empty }
func (m Move) IsPromotion() bool  { return m.Promotion() != Empty }
func (m Move) IsEnPassant() bool  { return int((m>>21)&3) == specialEnPassant }
func (m Move) IsCastle() bool     { return int((m>>21)&3) == specialCastle }

// String renders a Move in UCI long algebraic form: <from><to>[<promo>].
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var promo string
	if m.IsPromotion() {
		promo = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + promo
}

// ParseMove looks up the legal move matching a UCI long algebraic
// string among ml. It returns ErrBadMove if no move matches -
// the core never constructs a Move from unchecked text itself.
func ParseMove(ml []Move, lan string) (Move, error) {
	for _, m := range ml {
		if strings.EqualFold(m.String(), lan) {
			return m, nil
		}
	}
	return MoveEmpty, ErrBadMove
}
