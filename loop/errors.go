package loop

import "errors"

// Sentinel errors for loop resolution and traversal.
var (
	// ErrNotStart indicates ResolveStart was given a cell that is not an
	// unresolved start marker.
	ErrNotStart = errors.New("loop: cell is not an unresolved start")
	// ErrAmbiguousStart indicates the start's neighbors do not determine
	// exactly two open ends.
	ErrAmbiguousStart = errors.New("loop: ambiguous start connector")
	// ErrMalformedLoop indicates the pipes around the start do not form a
	// single simple closed loop.
	ErrMalformedLoop = errors.New("loop: malformed loop")
)
