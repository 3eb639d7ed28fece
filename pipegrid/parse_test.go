package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

const squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....
`

// TestParse_Square parses the small square loop and checks dimensions,
// start position and a sample of cell kinds.
func TestParse_Square(t *testing.T) {
	g, start, err := pipegrid.Parse(squareLoop)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, pipegrid.Coordinate{X: 1, Y: 1}, start)

	assert.Equal(t, pipegrid.Start, g.At(start).Kind)
	assert.False(t, g.At(start).Pipe.Valid(), "start shape is unresolved")

	seven := g.At(pipegrid.Coordinate{X: 3, Y: 1})
	require.True(t, seven.IsPipe())
	assert.Equal(t, pipegrid.Connector{pipegrid.South, pipegrid.West}, seven.Pipe)

	assert.True(t, g.At(pipegrid.Coordinate{X: 2, Y: 2}).IsUnclassified())
	assert.Equal(t, 8, g.Count(func(c pipegrid.Cell) bool { return c.Kind != pipegrid.Empty }))
}

// TestParse_CRLFAndTrailingBlankLines accepts Windows line endings and
// surplus trailing newlines.
func TestParse_CRLFAndTrailingBlankLines(t *testing.T) {
	g, start, err := pipegrid.Parse("S7\r\nLJ\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, pipegrid.Coordinate{}, start)
}

// TestParse_Errors is a table of every parse failure with its position.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         error
		line, column int
	}{
		{"empty", "", pipegrid.ErrEmptyGrid, 0, 0},
		{"only newlines", "\n\n", pipegrid.ErrEmptyGrid, 0, 0},
		{"jagged", "S-7\n|.\n", pipegrid.ErrNonRectangular, 2, 0},
		{"blank row inside", "S7\n\nLJ\n", pipegrid.ErrNonRectangular, 2, 0},
		{"bad glyph", "S7\nLX\n", pipegrid.ErrInvalidGlyph, 2, 2},
		{"no start", "F7\nLJ\n", pipegrid.ErrMissingStart, 0, 0},
		{"two starts", "S7\nLS\n", pipegrid.ErrDuplicateStart, 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _, err := pipegrid.Parse(tc.input)
			assert.Nil(t, g)
			require.ErrorIs(t, err, tc.want)

			var perr *pipegrid.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.line, perr.Line)
			assert.Equal(t, tc.column, perr.Column)
		})
	}
}

// TestParseError_Message includes the position when known.
func TestParseError_Message(t *testing.T) {
	_, _, err := pipegrid.Parse("S7\nL?\n")
	require.Error(t, err)
	assert.Equal(t, `line 2, column 2: pipegrid: invalid glyph '?'`, err.Error())

	_, _, err = pipegrid.Parse("F7\nLJ")
	require.Error(t, err)
	assert.Equal(t, "pipegrid: no start marker", err.Error())
}
