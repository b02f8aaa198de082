package core

import "errors"

// ErrBadFEN is returned by SetFromFEN when the text is structurally
// malformed: too few fields, an unrecognized piece letter, or a
// malformed square token. Loading is transactional - on error the
// Position is left exactly as it was before the call.
var ErrBadFEN = errors.New("core: malformed FEN")

// ErrNoHistory is returned by Unmake when the history stack is empty.
// Seeing it means a caller unmade more moves than it made.
var ErrNoHistory = errors.New("core: unmake called with empty history")

// ErrBadMove is a boundary-only error: raised when parsing a UCI long
// algebraic move string that does not match any move in the supplied
// list. The core itself never returns it from Make/Unmake.
var ErrBadMove = errors.New("core: move does not match any legal move")
