package pipegrid

import "strings"

// NewGrid returns a width×height grid of unclassified empty cells.
// Non-positive dimensions yield ErrEmptyGrid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index: Y*Width + X.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

// At returns the cell at c. Outside the grid it returns an empty Exterior
// cell, so the border behaves as an already-classified boundary.
func (g *Grid) At(c Coordinate) Cell {
	if !g.InBounds(c) {
		return outside
	}
	return g.cells[g.Index(c)]
}

// Set stores cell at c and reports whether c was in bounds.
func (g *Grid) Set(c Coordinate, cell Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.Index(c)] = cell
	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for _, cell := range g.cells {
		if pred(cell) {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Coordinate, Cell)) {
	for i, cell := range g.cells {
		fn(g.Coordinate(i), cell)
	}
}

// Render draws the grid one row per line: pipes as box-drawing characters,
// Interior as █, Exterior as ░, unclassified empty cells as '.', and an
// unresolved start as 'S'.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((g.width*3 + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(renderCell(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(c Cell) rune {
	switch c.Kind {
	case Pipe:
		return c.Pipe.Rune()
	case Start:
		return 'S'
	}
	switch c.Region {
	case Interior:
		return '█'
	case Exterior:
		return '░'
	default:
		return '.'
	}
}
