package pipegrid

import (
	"fmt"
	"strings"
)

// Parse converts puzzle text into a grid and the start coordinate.
//
// Rows are separated by '\n'; a trailing '\r' on a row and trailing blank
// rows are ignored. Each character must be '.', a pipe glyph or 'S', and
// exactly one 'S' must appear. The start cell is returned with Kind Start and
// an unresolved connector.
//
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, Coordinate, error) {
	rows := splitRows(text)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, Coordinate{}, &ParseError{Err: ErrEmptyGrid}
	}

	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, Coordinate{}, &ParseError{Err: err}
	}

	var (
		start    Coordinate
		hasStart bool
	)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, Coordinate{}, &ParseError{Line: y + 1, Err: ErrNonRectangular}
		}
		for x, r := range runes {
			at := Coordinate{X: x, Y: y}
			switch r {
			case '.':
				// cells start out empty and unclassified
			case 'S':
				if hasStart {
					return nil, Coordinate{}, &ParseError{Line: y + 1, Column: x + 1, Err: ErrDuplicateStart}
				}
				start, hasStart = at, true
				g.Set(at, Cell{Kind: Start})
			default:
				conn, ok := ConnectorForGlyph(r)
				if !ok {
					return nil, Coordinate{}, &ParseError{Line: y + 1, Column: x + 1, Err: fmt.Errorf("%w %q", ErrInvalidGlyph, r)}
				}
				g.Set(at, Cell{Kind: Pipe, Pipe: conn})
			}
		}
	}
	if !hasStart {
		return nil, Coordinate{}, &ParseError{Err: ErrMissingStart}
	}

	return g, start, nil
}

// splitRows breaks text into rows, dropping carriage returns and trailing
// blank lines.
func splitRows(text string) []string {
	rows := strings.Split(text, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
