// Package uci implements the line-oriented command dispatcher described
// in spec.md §6: it parses uci, isready, ucinewgame, position, go,
// stop, perft and quit from a reader and drives a core.Position and
// the movegen/perft packages in response. Search itself (what go
// actually computes) is out of scope per spec.md §1, so the go command
// is a protocol-complete stub: it reports a null best move rather than
// searching.
//
// Grounded on the teacher's pkg/uci/protocol.go and cmd/counter/main.go
// command-dispatch loop: a bufio.Scanner over stdin, one goroutine,
// switch on the first whitespace-delimited token.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lattice-chess/corechess/core"
	"github.com/lattice-chess/corechess/movegen"
	"github.com/lattice-chess/corechess/perft"
)

// Engine holds the single Position the protocol loop drives. It is not
// safe for concurrent use - the teacher's own protocol loop is
// single-goroutine for the same reason: there is exactly one board,
// and one command in flight at a time.
type Engine struct {
	pos     *core.Position
	out     io.Writer
	options []Option
	hash    *SpinOption
}

// New returns an Engine positioned at the standard start position,
// ready to receive commands.
func New(out io.Writer) *Engine {
	hash := NewSpinOption("Hash", 16, 1, 4096)
	return &Engine{
		pos:     core.NewPosition(core.InitialPositionFEN),
		out:     out,
		hash:    hash,
		options: []Option{hash},
	}
}

func (e *Engine) reply(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format+"\n", args...)
}

// RunCLI reads commands from r, one per line, until EOF or a quit
// command, dispatching each to the matching handler.
func (e *Engine) RunCLI(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			e.handleUCI()
		case "isready":
			e.reply("readyok")
		case "ucinewgame":
			e.pos = core.NewPosition(core.InitialPositionFEN)
		case "setoption":
			e.handleSetOption(fields[1:])
		case "position":
			e.handlePosition(fields[1:])
		case "go":
			e.handleGo(fields[1:])
		case "stop":
			// No search is running; nothing to stop.
		case "perft":
			e.handlePerft(fields[1:])
		case "quit":
			return nil
		default:
			e.reply("info string unknown command %q", fields[0])
		}
	}
	return scanner.Err()
}

func (e *Engine) handleUCI() {
	e.reply("id name corechess")
	e.reply("id author lattice-chess")
	for _, o := range e.options {
		e.reply("%s", o.Report())
	}
	e.reply("uciok")
}

// handleSetOption implements: setoption name <name> value <value>
func (e *Engine) handleSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		e.reply("info string malformed setoption command")
		return
	}
	name, value := args[1], args[3]
	for _, o := range e.options {
		if o.Name() == name {
			if err := o.Set(value); err != nil {
				e.reply("info string bad value for option %s: %v", name, err)
			}
			return
		}
	}
	e.reply("info string unknown option %s", name)
}

// handlePosition implements: position [startpos|fen <fen>] [moves <m1> <m2> ...]
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		e.reply("info string position requires startpos or fen")
		return
	}

	idx := 0
	switch args[idx] {
	case "startpos":
		e.pos = core.NewPosition(core.InitialPositionFEN)
		idx++
	case "fen":
		idx++
		end := idx
		for end < len(args) && args[end] != "moves" {
			end++
		}
		fen := strings.Join(args[idx:end], " ")
		next := core.NewPosition(core.InitialPositionFEN)
		if err := next.SetFromFEN(fen); err != nil {
			e.reply("info string %v", err)
			return
		}
		e.pos = next
		idx = end
	default:
		e.reply("info string position requires startpos or fen")
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		for _, lan := range args[idx+1:] {
			legal := movegen.Generate(e.pos)
			m, err := core.ParseMove(legal, lan)
			if err != nil {
				e.reply("info string %v: %q", err, lan)
				return
			}
			e.pos.Make(m)
		}
	}
}

// handleGo is a protocol stub: spec.md §1 puts search out of scope, so
// it always replies with the null move "bestmove 0000" rather than
// picking or searching for one.
func (e *Engine) handleGo(args []string) {
	_ = args
	e.reply("bestmove 0000")
}

// handlePerft implements: perft <depth> [fen <fen>] [divide]
func (e *Engine) handlePerft(args []string) {
	if len(args) == 0 {
		e.reply("info string perft requires a depth")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		e.reply("info string bad perft depth %q", args[0])
		return
	}

	pos := e.pos
	divide := false
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "fen":
			if i+1 >= len(rest) {
				e.reply("info string perft fen requires a FEN string")
				return
			}
			end := i + 1
			for end < len(rest) && rest[end] != "divide" {
				end++
			}
			fen := strings.Join(rest[i+1:end], " ")
			candidate := core.NewPosition(core.InitialPositionFEN)
			if err := candidate.SetFromFEN(fen); err != nil {
				e.reply("info string %v", err)
				return
			}
			pos = candidate
			i = end - 1
		case "divide":
			divide = true
		}
	}

	if divide {
		lines := perft.Divide(pos, depth)
		var total int64
		for _, l := range lines {
			e.reply("%s: %d", l.Move, l.Nodes)
			total += l.Nodes
		}
		e.reply("")
		e.reply("Nodes searched: %d", total)
		return
	}

	e.reply("Nodes searched: %d", perft.Count(pos, depth))
}
