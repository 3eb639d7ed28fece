package loop

import "github.com/katalvlaran/pipeloop/pipegrid"

// DiscardJunk turns every pipe cell of g that is not on l into an
// unclassified empty cell and returns how many were cleared. Junk pipes would
// otherwise block the flood fill during region classification.
func DiscardJunk(g *pipegrid.Grid, l Loop) int {
	onLoop := l.Set()
	cleared := 0
	g.Each(func(c pipegrid.Coordinate, cell pipegrid.Cell) {
		if cell.Kind == pipegrid.Empty {
			return
		}
		if _, ok := onLoop[c]; ok {
			return
		}
		g.Set(c, pipegrid.Cell{})
		cleared++
	})
	return cleared
}
