// Package core implements the board representation at the heart of the
// engine: bitboards, a reversible Position, and the Move value type.
// It knows nothing about search, evaluation or the UCI protocol.
package core

// Color is the two-valued side-to-move tag.
type Color int

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

// PieceType is the six-valued piece tag. Empty is used as the sentinel
// "no piece" value returned by PieceAt and stored as a Move's captured
// or promoted piece when there is none.
type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Square is a board index 0..63, square = rank*8 + file, a1 = 0, h8 = 63.
type Square int

const SquareNone Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Castling rights bit assignment, per the spec's 4-bit mask.
const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxMoves bounds the pseudo-legal move buffer a single position can
// produce; 256 is the conventional headroom used across the example
// engines (CounterGo included).
const MaxMoves = 256
