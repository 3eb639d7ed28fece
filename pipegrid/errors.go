package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrInvalidGlyph indicates a character outside the allowed glyph set.
	ErrInvalidGlyph = errors.New("pipegrid: invalid glyph")
	// ErrMissingStart indicates the input carries no start marker.
	ErrMissingStart = errors.New("pipegrid: no start marker")
	// ErrDuplicateStart indicates more than one start marker.
	ErrDuplicateStart = errors.New("pipegrid: more than one start marker")
)

// ParseError reports where in the input a parse failure occurred.
// Line and Column are 1-based; zero means the failure has no single position
// (for example a missing start marker).
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
