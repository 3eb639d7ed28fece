package pipegrid

// Connector holds the two open ends of a pipe segment, stored in ascending
// Direction order. The zero value (North, North) is the unresolved shape a
// Start cell carries before its neighbors are inspected.
type Connector [2]Direction

// glyphs maps every pipe character to its connector.
var glyphs = map[rune]Connector{
	'|': {North, South},
	'-': {East, West},
	'L': {North, East},
	'J': {North, West},
	'7': {South, West},
	'F': {East, South},
}

// boxRunes maps each connector to its box-drawing rune.
var boxRunes = map[Connector]rune{
	{North, South}: '│',
	{East, West}:   '─',
	{North, East}:  '└',
	{North, West}:  '┘',
	{South, West}:  '┐',
	{East, South}:  '┌',
}

// ConnectorFor builds a normalized connector from two directions.
// ok is false when a and b are equal.
func ConnectorFor(a, b Direction) (Connector, bool) {
	if a == b {
		return Connector{}, false
	}
	if a > b {
		a, b = b, a
	}
	return Connector{a, b}, true
}

// ConnectorForGlyph returns the connector drawn by r, if r is a pipe glyph.
func ConnectorForGlyph(r rune) (Connector, bool) {
	c, ok := glyphs[r]
	return c, ok
}

// Valid reports whether the connector has two distinct open ends.
func (c Connector) Valid() bool {
	return c[0] != c[1]
}

// Has reports whether d is one of the open ends.
func (c Connector) Has(d Direction) bool {
	return c.Valid() && (c[0] == d || c[1] == d)
}

// Other returns the open end that is not d. ok is false when d is not an
// open end of c.
func (c Connector) Other(d Direction) (Direction, bool) {
	switch {
	case !c.Valid():
		return 0, false
	case c[0] == d:
		return c[1], true
	case c[1] == d:
		return c[0], true
	}
	return 0, false
}

// Glyph returns the input character for c, or '?' for an invalid connector.
func (c Connector) Glyph() rune {
	for r, g := range glyphs {
		if g == c {
			return r
		}
	}
	return '?'
}

// Rune returns the box-drawing character for c, or '?' for an invalid connector.
func (c Connector) Rune() rune {
	if r, ok := boxRunes[c]; ok {
		return r
	}
	return '?'
}

// Kind tags what occupies a cell.
type Kind uint8

const (
	// Empty is a cell with no pipe.
	Empty Kind = iota
	// Pipe is a cell holding a resolved connector.
	Pipe
	// Start is the start cell before its connector is resolved.
	Start
)

// Region is the classification of an empty cell relative to the loop.
type Region uint8

const (
	// Unclassified is the region of every empty cell before classification.
	Unclassified Region = iota
	// Interior marks a cell enclosed by the loop.
	Interior
	// Exterior marks a cell outside the loop.
	Exterior
)

// String implements fmt.Stringer.
func (r Region) String() string {
	switch r {
	case Interior:
		return "Interior"
	case Exterior:
		return "Exterior"
	default:
		return "Unclassified"
	}
}

// Cell is one grid cell. Pipe is meaningful only for Kind == Pipe; Region is
// meaningful only for Kind == Empty.
type Cell struct {
	Kind   Kind
	Pipe   Connector
	Region Region
}

// outside is what At returns beyond the grid border.
var outside = Cell{Kind: Empty, Region: Exterior}

// IsPipe reports whether the cell holds a resolved connector.
func (c Cell) IsPipe() bool { return c.Kind == Pipe }

// IsUnclassified reports whether the cell is empty and not yet tagged.
func (c Cell) IsUnclassified() bool {
	return c.Kind == Empty && c.Region == Unclassified
}

// Grid is a rectangular, row-major field of cells. It owns its cells
// exclusively; callers read and write through At and Set.
type Grid struct {
	width, height int
	cells         []Cell
}
