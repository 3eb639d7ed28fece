package pipegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestDirection_RotationClosure exhaustively checks the rotation table:
// four clockwise turns are the identity, CW and CCW are inverses, and
// Reverse equals two turns in either sense.
func TestDirection_RotationClosure(t *testing.T) {
	for _, d := range pipegrid.Directions {
		assert.Equal(t, d, d.CW().CW().CW().CW(), "4×CW of %v", d)
		assert.Equal(t, d, d.CW().CCW(), "CW∘CCW of %v", d)
		assert.Equal(t, d, d.CCW().CW(), "CCW∘CW of %v", d)
		assert.Equal(t, d.Reverse(), d.CW().CW(), "2×CW of %v", d)
		assert.Equal(t, d.Reverse(), d.CCW().CCW(), "2×CCW of %v", d)
		assert.Equal(t, d, d.Reverse().Reverse(), "2×Reverse of %v", d)
	}
}

// TestDirection_ClockwiseOrder pins the clockwise sense with Y growing downward.
func TestDirection_ClockwiseOrder(t *testing.T) {
	assert.Equal(t, pipegrid.East, pipegrid.North.CW())
	assert.Equal(t, pipegrid.South, pipegrid.East.CW())
	assert.Equal(t, pipegrid.West, pipegrid.South.CW())
	assert.Equal(t, pipegrid.North, pipegrid.West.CW())
	assert.Equal(t, pipegrid.West, pipegrid.North.CCW())
}

// TestDirection_OffsetsCancel verifies opposite directions have opposite steps.
func TestDirection_OffsetsCancel(t *testing.T) {
	origin := pipegrid.Coordinate{X: 3, Y: 7}
	for _, d := range pipegrid.Directions {
		assert.Equal(t, origin, origin.Step(d).Step(d.Reverse()), "step %v and back", d)
	}
	assert.Equal(t, pipegrid.Coordinate{X: 3, Y: 6}, origin.Step(pipegrid.North))
	assert.Equal(t, pipegrid.Coordinate{X: 4, Y: 7}, origin.Step(pipegrid.East))
}

// TestDirectionBetween covers adjacent and non-adjacent pairs.
func TestDirectionBetween(t *testing.T) {
	a := pipegrid.Coordinate{X: 1, Y: 1}
	for _, d := range pipegrid.Directions {
		got, ok := pipegrid.DirectionBetween(a, a.Step(d))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := pipegrid.DirectionBetween(a, pipegrid.Coordinate{X: 2, Y: 2})
	assert.False(t, ok, "diagonal is not adjacent")
	_, ok = pipegrid.DirectionBetween(a, a)
	assert.False(t, ok, "a cell is not its own neighbor")
}

// TestDirection_String covers the names and the out-of-range fallback.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "North", pipegrid.North.String())
	assert.Equal(t, "West", pipegrid.West.String())
	assert.Equal(t, "Direction(9)", pipegrid.Direction(9).String())
}
