package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// turns[entry][exit] is the turn value at a cell entered from entry (the
// direction back toward the previous cell) and left through exit.
var turns = func() (t [4][4]int) {
	for _, d := range pipegrid.Directions {
		t[d][d.CCW()] = 1
		t[d][d.CW()] = -1
	}
	return t
}()

// Turn returns +1 when exit is entry rotated counter-clockwise, −1 when it is
// entry rotated clockwise, and 0 otherwise (straight through).
func Turn(entry, exit pipegrid.Direction) int {
	return turns[entry][exit]
}

// Curvature returns the sum of turn values over the cyclic loop l.
//
// For a simple closed loop on the grid the total is exactly +4 or −4; any
// other value, and any pair of consecutive cells that are not 4-adjacent,
// yields ErrMalformedLoop.
//
// Complexity: O(L).
func Curvature(l Loop) (int, error) {
	n := len(l)
	if n < 4 {
		return 0, fmt.Errorf("%w: loop of %d cells cannot close", ErrMalformedLoop, n)
	}

	total := 0
	for i, current := range l {
		prev, next := l[(i+n-1)%n], l[(i+1)%n]
		entry, ok := pipegrid.DirectionBetween(current, prev)
		if !ok {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrMalformedLoop, prev, current)
		}
		exit, ok := pipegrid.DirectionBetween(current, next)
		if !ok {
			return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrMalformedLoop, current, next)
		}
		total += Turn(entry, exit)
	}

	if total != 4 && total != -4 {
		return 0, fmt.Errorf("%w: total turning %d", ErrMalformedLoop, total)
	}
	return total, nil
}
