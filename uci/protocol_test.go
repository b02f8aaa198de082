package uci

import (
	"strings"
	"testing"
)

func runLines(t *testing.T, lines ...string) string {
	t.Helper()
	var out strings.Builder
	e := New(&out)
	if err := e.RunCLI(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("RunCLI failed: %v", err)
	}
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	out := runLines(t, "uci", "quit")
	if !strings.Contains(out, "uciok") {
		t.Errorf("expected uciok in output, got %q", out)
	}
	if !strings.Contains(out, "option name Hash") {
		t.Errorf("expected the Hash option to be reported, got %q", out)
	}
}

func TestIsReady(t *testing.T) {
	out := runLines(t, "isready", "quit")
	if strings.TrimSpace(out) != "readyok" {
		t.Errorf("isready reply = %q, want readyok", out)
	}
}

func TestPositionAndPerft(t *testing.T) {
	out := runLines(t, "position startpos", "perft 3", "quit")
	if !strings.Contains(out, "Nodes searched: 8902") {
		t.Errorf("perft 3 from startpos should report 8902 nodes, got %q", out)
	}
}

func TestPositionWithMoves(t *testing.T) {
	out := runLines(t, "position startpos moves e2e4 e7e5", "perft 1", "quit")
	if !strings.Contains(out, "Nodes searched: 29") {
		t.Errorf("perft 1 after 1.e4 e5 should report 29 nodes, got %q", out)
	}
}

func TestPositionFEN(t *testing.T) {
	out := runLines(t, "position fen 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", "perft 2", "quit")
	if !strings.Contains(out, "Nodes searched: 191") {
		t.Errorf("perft 2 from position 3 should report 191 nodes, got %q", out)
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	out := runLines(t, "position startpos", "perft 2 divide", "quit")
	if !strings.Contains(out, "Nodes searched: 400") {
		t.Errorf("divide total for perft 2 should be 400, got %q", out)
	}
}

func TestGoRepliesWithNullMove(t *testing.T) {
	out := runLines(t, "go", "quit")
	if !strings.Contains(out, "bestmove 0000") {
		t.Errorf("go should reply bestmove 0000, got %q", out)
	}
}

func TestSetOptionHash(t *testing.T) {
	var out strings.Builder
	e := New(&out)
	if err := e.RunCLI(strings.NewReader("setoption name Hash value 64\nquit\n")); err != nil {
		t.Fatalf("RunCLI failed: %v", err)
	}
	if e.hash.Value() != 64 {
		t.Errorf("Hash option value = %d, want 64", e.hash.Value())
	}
}

func TestBadMoveInPositionCommand(t *testing.T) {
	out := runLines(t, "position startpos moves z9z9", "quit")
	if !strings.Contains(out, "info string") {
		t.Errorf("an unparseable move should produce an info string, got %q", out)
	}
}
