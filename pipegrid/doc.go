// Package pipegrid models a rectangular field of pipe connectors as a typed
// grid and parses it from its one-glyph-per-cell text form.
//
// What:
//
//   - Direction: the four cardinal directions with table-driven rotation
//     (clockwise, counter-clockwise, reverse).
//   - Coordinate: an (X, Y) grid index; Y grows downward.
//   - Connector: the two open ends of one pipe segment.
//   - Cell: a single tagged cell (Empty, Pipe or unresolved Start) that may
//     carry a Region tag once classified.
//   - Grid: row-major storage with an out-of-bounds sentinel that reads as an
//     Exterior empty cell, so traversals never special-case the border.
//   - Parse: text → (*Grid, start Coordinate).
//
// Glyphs:
//
//	|  north–south      -  east–west
//	L  north–east       J  north–west
//	7  south–west       F  south–east
//	.  empty            S  start (shape inferred later)
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - At/Set: O(1).
//   - Render: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidGlyph:    a character outside the glyph set.
//   - ErrMissingStart:    no S marker.
//   - ErrDuplicateStart:  more than one S marker.
//
// Every parse failure is reported as a *ParseError wrapping one of the
// sentinels above, so callers can match with errors.Is and still read the
// offending line and column.
package pipegrid
