package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ResolveStart infers the connector of the start cell and writes it into g.
//
// Each neighbor N, E, S, W is checked in turn; when the neighbor is a pipe
// whose open ends include the direction pointing back at start, the direction
// toward that neighbor is one of the start's open ends. Exactly two matches
// are required, otherwise ErrAmbiguousStart is returned and g is untouched.
func ResolveStart(g *pipegrid.Grid, start pipegrid.Coordinate) (pipegrid.Connector, error) {
	if cell := g.At(start); cell.Kind != pipegrid.Start {
		return pipegrid.Connector{}, fmt.Errorf("%w at %v", ErrNotStart, start)
	}

	open := make([]pipegrid.Direction, 0, len(pipegrid.Directions))
	for _, d := range pipegrid.Directions {
		neighbor := g.At(start.Step(d))
		if neighbor.IsPipe() && neighbor.Pipe.Has(d.Reverse()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return pipegrid.Connector{}, fmt.Errorf("%w: %d neighbors connect to %v", ErrAmbiguousStart, len(open), start)
	}

	conn, _ := pipegrid.ConnectorFor(open[0], open[1])
	g.Set(start, pipegrid.Cell{Kind: pipegrid.Pipe, Pipe: conn})

	return conn, nil
}
