package region

import "github.com/katalvlaran/pipeloop/pipegrid"

// Summary counts the cells of a grid by kind and region.
type Summary struct {
	Interior     int
	Exterior     int
	Pipes        int
	Unclassified int
}

// InteriorArea returns the number of cells tagged Interior.
func InteriorArea(g *pipegrid.Grid) int {
	return g.Count(func(c pipegrid.Cell) bool {
		return c.Kind == pipegrid.Empty && c.Region == pipegrid.Interior
	})
}

// Summarize counts every cell of g once.
func Summarize(g *pipegrid.Grid) Summary {
	var s Summary
	g.Each(func(_ pipegrid.Coordinate, c pipegrid.Cell) {
		switch {
		case c.Kind != pipegrid.Empty:
			s.Pipes++
		case c.Region == pipegrid.Interior:
			s.Interior++
		case c.Region == pipegrid.Exterior:
			s.Exterior++
		default:
			s.Unclassified++
		}
	})
	return s
}
