package pipeloop

import (
	"log/slog"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

// Report is the outcome of a full Analyze run.
type Report struct {
	// Grid is the classified grid: the start is resolved, junk pipes are
	// cleared and every empty cell carries a Region tag.
	Grid *pipegrid.Grid
	// Start is the coordinate of the S marker.
	Start pipegrid.Coordinate
	// StartPipe is the connector inferred for the start.
	StartPipe pipegrid.Connector
	// Loop is the traced cycle, start first.
	Loop loop.Loop
	// Curvature is the loop's turning total, +4 or −4.
	Curvature int
	// Winding is the turning sense derived from Curvature.
	Winding loop.Winding
	// Discarded is the number of junk pipes cleared before classification.
	Discarded int
	// Summary counts the classified cells.
	Summary region.Summary
}

// HalfLength returns the number of steps from the start to the farthest
// point of the loop.
func (r *Report) HalfLength() int { return r.Loop.HalfLength() }

// EnclosedArea returns the number of Interior cells.
func (r *Report) EnclosedArea() int { return r.Summary.Interior }

// Analyze runs the whole pipeline over text.
//
// Errors from any stage are returned unchanged and no report is produced:
// parse failures wrap pipegrid's sentinels, start and loop failures wrap
// loop.ErrAmbiguousStart or loop.ErrMalformedLoop.
func Analyze(text string, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	g, start, err := pipegrid.Parse(text)
	if err != nil {
		return nil, err
	}
	log.Debug("Grid parsed.", "width", g.Width(), "height", g.Height(), "start", start)

	conn, err := loop.ResolveStart(g, start)
	if err != nil {
		return nil, err
	}
	log.Debug("Start resolved.", "start", start, "pipe", string(conn.Glyph()))

	first := conn[0]
	if o.Reverse {
		first = conn[1]
	}
	l, err := loop.TraceFrom(g, start, first)
	if err != nil {
		return nil, err
	}
	log.Debug("Loop traced.", "loop_len", l.Len(), "first", first)

	curvature, err := loop.Curvature(l)
	if err != nil {
		return nil, err
	}
	winding := loop.WindingOf(curvature)
	log.Debug("Curvature measured.", "curvature", curvature, "winding", winding.String())

	discarded := loop.DiscardJunk(g, l)
	log.Debug("Junk discarded.", "discarded", discarded)

	if err := region.Classify(g, l, curvature); err != nil {
		return nil, err
	}
	summary := region.Summarize(g)
	log.Debug("Regions classified.",
		slog.Int("interior", summary.Interior),
		slog.Int("exterior", summary.Exterior),
	)

	return &Report{
		Grid:      g,
		Start:     start,
		StartPipe: conn,
		Loop:      l,
		Curvature: curvature,
		Winding:   winding,
		Discarded: discarded,
		Summary:   summary,
	}, nil
}

// LoopHalfLength returns the loop length divided by two: the distance from
// the start to the farthest loop cell.
func LoopHalfLength(text string) (int, error) {
	g, start, err := pipegrid.Parse(text)
	if err != nil {
		return 0, err
	}
	if _, err := loop.ResolveStart(g, start); err != nil {
		return 0, err
	}
	l, err := loop.Trace(g, start)
	if err != nil {
		return 0, err
	}
	return l.HalfLength(), nil
}

// EnclosedArea returns the number of empty cells enclosed by the loop, after
// every pipe not on the loop has been cleared.
func EnclosedArea(text string) (int, error) {
	r, err := Analyze(text)
	if err != nil {
		return 0, err
	}
	return r.EnclosedArea(), nil
}
