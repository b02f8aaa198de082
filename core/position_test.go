package core

import (
	"errors"
	"testing"
)

func TestSetFromFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		var p Position
		if err := p.SetFromFEN(fen); err != nil {
			t.Fatalf("SetFromFEN(%q) failed: %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
	}
}

func TestSetFromFENRejectsGarbage(t *testing.T) {
	var p Position
	if err := p.SetFromFEN(InitialPositionFEN); err != nil {
		t.Fatalf("seeding with a valid FEN failed: %v", err)
	}
	before := p.FEN()

	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range bad {
		if err := p.SetFromFEN(fen); err == nil {
			t.Errorf("SetFromFEN(%q) should have failed", fen)
		} else if !errors.Is(err, ErrBadFEN) {
			t.Errorf("SetFromFEN(%q) error = %v, want wrapping ErrBadFEN", fen, err)
		}
		if got := p.FEN(); got != before {
			t.Errorf("failed SetFromFEN mutated the position: got %q, want unchanged %q", got, before)
		}
	}
}

func TestMakeUnmakeRestoresState(t *testing.T) {
	p := NewPosition(InitialPositionFEN)
	before := *p
	beforeFEN := p.FEN()

	m := NewQuietMove(E2, E4, Pawn)
	p.Make(m)
	if p.FEN() == beforeFEN {
		t.Fatal("Make did not change the position")
	}
	if err := p.Unmake(); err != nil {
		t.Fatalf("Unmake failed: %v", err)
	}
	if got := p.FEN(); got != beforeFEN {
		t.Errorf("Unmake did not restore FEN: got %q, want %q", got, beforeFEN)
	}
	if p.key != before.key {
		t.Error("Unmake did not restore the Zobrist key")
	}
	if p.HistoryDepth() != 0 {
		t.Errorf("HistoryDepth() = %d, want 0", p.HistoryDepth())
	}
}

func TestUnmakeWithEmptyHistoryErrors(t *testing.T) {
	p := NewPosition(InitialPositionFEN)
	if err := p.Unmake(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("Unmake() on a fresh position = %v, want ErrNoHistory", err)
	}
}

func TestDoublePushSetsEpSquare(t *testing.T) {
	p := NewPosition(InitialPositionFEN)
	p.Make(NewQuietMove(E2, E4, Pawn))
	if p.EpSquare() != E3 {
		t.Errorf("EpSquare() after e2e4 = %v, want e3", SquareName(p.EpSquare()))
	}
}

func TestEnPassantCapture(t *testing.T) {
	p := NewPosition("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	ml := []Move{NewEnPassantMove(D4, E3)}
	m, err := ParseMove(ml, "d4e3")
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	p.Make(m)
	if _, _, ok := p.PieceAt(E4); ok {
		t.Error("en passant capture should have removed the pawn on e4")
	}
	if _, pt, ok := p.PieceAt(E3); !ok || pt != Pawn {
		t.Error("en passant capture should have placed the capturing pawn on e3")
	}
	if err := p.Unmake(); err != nil {
		t.Fatalf("Unmake failed: %v", err)
	}
	if _, pt, ok := p.PieceAt(E4); !ok || pt != Pawn {
		t.Error("Unmake should have restored the captured pawn on e4")
	}
}

func TestCastlingRightsClearOnKingAndRookMoves(t *testing.T) {
	p := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.Make(NewQuietMove(H1, G1, Rook))
	if p.CastlingRights()&WhiteKingSide != 0 {
		t.Error("moving the h1 rook should clear white kingside rights")
	}
	if p.CastlingRights()&WhiteQueenSide == 0 {
		t.Error("moving the h1 rook should not clear white queenside rights")
	}

	p2 := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p2.Make(NewQuietMove(E1, E2, King))
	if p2.CastlingRights()&(WhiteKingSide|WhiteQueenSide) != 0 {
		t.Error("moving the king should clear both white castling rights")
	}
}

func TestCastlingRightsClearOnRookCapture(t *testing.T) {
	p := NewPosition("r3k2r/8/8/8/8/6n1/8/R3K2R b KQkq - 0 1")
	p.Make(NewCaptureMove(G3, H1, Knight, Rook))
	if p.CastlingRights()&WhiteKingSide != 0 {
		t.Error("capturing the h1 rook should clear white kingside rights")
	}
}

func TestCastleMovesRook(t *testing.T) {
	p := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.Make(NewCastleMove(E1, G1))
	if _, pt, ok := p.PieceAt(F1); !ok || pt != Rook {
		t.Error("kingside castle should move the rook to f1")
	}
	if _, _, ok := p.PieceAt(H1); ok {
		t.Error("kingside castle should vacate h1")
	}
	if err := p.Unmake(); err != nil {
		t.Fatalf("Unmake failed: %v", err)
	}
	if _, pt, ok := p.PieceAt(H1); !ok || pt != Rook {
		t.Error("Unmake should restore the rook to h1")
	}
}

func TestHalfmoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	p := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 10")
	p.Make(NewQuietMove(E1, E2, King))
	if p.HalfmoveClock() != 6 {
		t.Errorf("HalfmoveClock() after a quiet king move = %d, want 6", p.HalfmoveClock())
	}
	if err := p.Unmake(); err != nil {
		t.Fatal(err)
	}

	p.Make(NewCaptureMove(A1, A8, Rook, Rook))
	if p.HalfmoveClock() != 0 {
		t.Errorf("HalfmoveClock() after a capture = %d, want 0", p.HalfmoveClock())
	}
}

func TestFullmoveNumberIncrementsAfterBlack(t *testing.T) {
	p := NewPosition(InitialPositionFEN)
	p.Make(NewQuietMove(E2, E4, Pawn))
	if p.FullmoveNumber() != 1 {
		t.Errorf("FullmoveNumber() after White's move = %d, want 1", p.FullmoveNumber())
	}
	p.Make(NewQuietMove(E7, E5, Pawn))
	if p.FullmoveNumber() != 2 {
		t.Errorf("FullmoveNumber() after Black's move = %d, want 2", p.FullmoveNumber())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition(InitialPositionFEN)
	p.Make(NewQuietMove(E2, E4, Pawn))
	c := p.Clone()
	c.Make(NewQuietMove(E7, E5, Pawn))
	if p.FEN() == c.FEN() {
		t.Error("mutating the clone should not affect the original")
	}
	if err := c.Unmake(); err != nil {
		t.Fatal(err)
	}
	if err := p.Unmake(); err != nil {
		t.Fatal(err)
	}
}
