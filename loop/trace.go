package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Trace walks the loop through start, leaving through the first of the
// start connector's open ends. The start must already be resolved.
func Trace(g *pipegrid.Grid, start pipegrid.Coordinate) (Loop, error) {
	cell := g.At(start)
	if !cell.IsPipe() {
		return nil, fmt.Errorf("%w: start %v is not a resolved pipe", ErrMalformedLoop, start)
	}
	return TraceFrom(g, start, cell.Pipe[0])
}

// TraceFrom walks the loop through start, leaving in direction first, which
// must be one of the start connector's open ends. Either end yields the same
// cycle; the two orders are reverses of each other.
//
// At every cell the arrival direction must be an open end of its connector
// and the walk leaves through the other end. The walk ends when it steps back
// onto start. A walk longer than the grid has cells cannot be a simple loop
// and fails with ErrMalformedLoop, so the walk is always bounded.
//
// Complexity: O(L) time and memory.
func TraceFrom(g *pipegrid.Grid, start pipegrid.Coordinate, first pipegrid.Direction) (Loop, error) {
	cell := g.At(start)
	if !cell.IsPipe() || !cell.Pipe.Has(first) {
		return nil, fmt.Errorf("%w: start %v does not open toward %v", ErrMalformedLoop, start, first)
	}

	limit := g.Width() * g.Height()
	l := Loop{start}
	current, heading := start.Step(first), first

	for current != start {
		if len(l) >= limit {
			return nil, fmt.Errorf("%w: walk exceeded %d cells without returning to %v", ErrMalformedLoop, limit, start)
		}

		cell = g.At(current)
		if !cell.IsPipe() {
			return nil, fmt.Errorf("%w: walk left the pipes at %v", ErrMalformedLoop, current)
		}
		exit, ok := cell.Pipe.Other(heading.Reverse())
		if !ok {
			return nil, fmt.Errorf("%w: pipe %c at %v does not accept arrival heading %v",
				ErrMalformedLoop, cell.Pipe.Glyph(), current, heading)
		}

		l = append(l, current)
		current, heading = current.Step(exit), exit
	}

	// Arriving at start through an end it does not expose means the walk
	// closed onto start from the side.
	if !g.At(start).Pipe.Has(heading.Reverse()) {
		return nil, fmt.Errorf("%w: walk re-entered %v through a closed side", ErrMalformedLoop, start)
	}

	return l, nil
}
