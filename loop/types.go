package loop

import "github.com/katalvlaran/pipeloop/pipegrid"

// Loop is the ordered cycle of coordinates starting at the start cell.
// The start appears once, first; the step from the last element back to the
// first closes the cycle.
type Loop []pipegrid.Coordinate

// Len returns the number of cells on the loop.
func (l Loop) Len() int { return len(l) }

// HalfLength returns the distance, in steps, from the start to the farthest
// loop cell. Loops are always even, so either traversal sense agrees.
func (l Loop) HalfLength() int { return len(l) / 2 }

// Set returns the loop's cells as a lookup set.
func (l Loop) Set() map[pipegrid.Coordinate]struct{} {
	set := make(map[pipegrid.Coordinate]struct{}, len(l))
	for _, c := range l {
		set[c] = struct{}{}
	}
	return set
}

// Reverse returns the same cycle walked in the opposite sense, still starting
// at the start cell.
func (l Loop) Reverse() Loop {
	if len(l) == 0 {
		return nil
	}
	out := make(Loop, len(l))
	out[0] = l[0]
	for i := 1; i < len(l); i++ {
		out[i] = l[len(l)-i]
	}
	return out
}

// Winding is the turning sense of a closed loop.
type Winding int8

const (
	// Clockwise loops total +4 (Y downward).
	Clockwise Winding = 1
	// CounterClockwise loops total −4.
	CounterClockwise Winding = -1
)

// WindingOf returns the winding for a curvature total. Only the sign is used.
func WindingOf(total int) Winding {
	if total < 0 {
		return CounterClockwise
	}
	return Clockwise
}

// String implements fmt.Stringer.
func (w Winding) String() string {
	if w == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}
