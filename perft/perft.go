// Package perft counts the leaves of the legal move tree below a
// position to a fixed depth - the standard correctness oracle for a
// move generator, since the true counts for a handful of well-known
// positions are published and any divergence points at a specific bug
// class (missing en passant, wrong castling rights, and so on).
//
// Not named in spec.md itself, but anticipated by it: the spec's own
// worked examples (§8) are perft fixtures, and a generator with no
// runnable oracle for them would leave half the spec unverifiable.
// Grounded on the teacher's Perft/TestPerft in common/perft_test.go,
// promoted here from a test helper to a real package so it can also
// back the uci package's "perft" command.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lattice-chess/corechess/core"
	"github.com/lattice-chess/corechess/movegen"
)

// Count returns the number of leaf positions reachable from pos after
// exactly depth plies of legal moves. depth == 0 counts pos itself as
// a single leaf, matching the conventional perft(0) == 1 base case.
func Count(pos *core.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var total int64
	for _, m := range moves {
		pos.Make(m)
		total += Count(pos, depth-1)
		pos.Unmake()
	}
	return total
}

// DivideLine is one line of a Divide report: a root move and the leaf
// count below it.
type DivideLine struct {
	Move  core.Move
	Nodes int64
}

// Divide breaks a perft count down by root move, the standard way to
// bisect a perft mismatch against a reference engine: compare each
// line's count and recurse into the first one that disagrees.
func Divide(pos *core.Position, depth int) []DivideLine {
	moves := movegen.Generate(pos)
	lines := make([]DivideLine, 0, len(moves))
	for _, m := range moves {
		pos.Make(m)
		nodes := Count(pos, depth-1)
		pos.Unmake()
		lines = append(lines, DivideLine{Move: m, Nodes: nodes})
	}
	return lines
}

// CountParallel is Count fanned out over the root moves, one goroutine
// per root move via golang.org/x/sync/errgroup - the same dependency
// the teacher itself carries (it is the one third-party import in the
// teacher's own go.mod), here put to a use the teacher never had any
// reason to: the teacher's own perft test runs single-threaded.
//
// Each goroutine works against its own Position clone, since Position
// is not safe for concurrent Make/Unmake from multiple goroutines.
// A goroutine that starts after ctx is cancelled returns the context's
// error, and CountParallel then returns that error; a subtree count
// that is already running is not interrupted and runs to completion.
func CountParallel(ctx context.Context, pos *core.Position, depth int) (int64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := movegen.Generate(pos)
	if depth == 1 {
		return int64(len(moves)), nil
	}

	counts := make([]int64, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child := pos.Clone()
			child.Make(m)
			counts[i] = Count(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}
