package region

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// side pairs a region tag with the curvature sign that selects its seeds.
type side struct {
	region pipegrid.Region
	sign   int
}

// Classify tags every unclassified empty cell of g as Interior or Exterior.
//
// l must be the traced loop and curvature its turning total; only the sign of
// curvature is used. The loop is validated before any cell is tagged, so on
// error g is unchanged.
func Classify(g *pipegrid.Grid, l loop.Loop, curvature int) error {
	if len(l) == 0 {
		return ErrEmptyLoop
	}
	if curvature == 0 {
		return ErrZeroCurvature
	}
	headings, err := headingsOf(g, l)
	if err != nil {
		return err
	}

	sign := 1
	if curvature < 0 {
		sign = -1
	}
	sides := [2]side{
		{region: pipegrid.Interior, sign: sign},
		{region: pipegrid.Exterior, sign: -sign},
	}

	n := len(l)
	var (
		work  []pipegrid.Coordinate
		seeds []pipegrid.Coordinate
	)
	for i, current := range l {
		hin, hout := headings[(i+n-1)%n], headings[i]
		for _, s := range sides {
			seeds = seedsFor(seeds[:0], current, hin, hout, s.sign)
			for _, seed := range seeds {
				work, _ = fill(g, seed, s.region, work[:0])
			}
		}
	}
	return nil
}

// headingsOf returns, for each loop index i, the heading from l[i] to the
// next loop cell, checking that every loop cell is a pipe of g.
func headingsOf(g *pipegrid.Grid, l loop.Loop) ([]pipegrid.Direction, error) {
	n := len(l)
	headings := make([]pipegrid.Direction, n)
	for i, current := range l {
		if !g.At(current).IsPipe() {
			return nil, fmt.Errorf("%w: %v is not a pipe", ErrLoopMismatch, current)
		}
		next := l[(i+1)%n]
		h, ok := pipegrid.DirectionBetween(current, next)
		if !ok {
			return nil, fmt.Errorf("%w: %v and %v are not adjacent", ErrLoopMismatch, current, next)
		}
		headings[i] = h
	}
	return headings, nil
}

// sideOf returns the direction perpendicular to heading on the side selected
// by sign.
func sideOf(heading pipegrid.Direction, sign int) pipegrid.Direction {
	if sign > 0 {
		return heading.CW()
	}
	return heading.CCW()
}

// seedsFor appends the cells bordering current on one side of the loop.
func seedsFor(dst []pipegrid.Coordinate, current pipegrid.Coordinate, hin, hout pipegrid.Direction, sign int) []pipegrid.Coordinate {
	in, out := sideOf(hin, sign), sideOf(hout, sign)
	dst = append(dst, current.Step(out), current.Step(in))
	if hin != hout {
		dst = append(dst, current.Step(in).Step(out))
	}
	return dst
}

// Fill tags seed and every unclassified empty cell 4-connected to it with
// region, and returns how many cells were tagged. A seed that is not an
// unclassified empty cell tags nothing.
func Fill(g *pipegrid.Grid, seed pipegrid.Coordinate, region pipegrid.Region) int {
	_, n := fill(g, seed, region, nil)
	return n
}

// fill is Fill over a caller-provided worklist, which it returns for reuse.
// Cells are tagged when pushed, so each is pushed at most once.
func fill(g *pipegrid.Grid, seed pipegrid.Coordinate, region pipegrid.Region, stack []pipegrid.Coordinate) ([]pipegrid.Coordinate, int) {
	if !g.At(seed).IsUnclassified() {
		return stack, 0
	}
	tagged := pipegrid.Cell{Kind: pipegrid.Empty, Region: region}
	g.Set(seed, tagged)
	stack = append(stack, seed)
	n := 1

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range pipegrid.Directions {
			next := c.Step(d)
			if g.At(next).IsUnclassified() {
				g.Set(next, tagged)
				stack = append(stack, next)
				n++
			}
		}
	}
	return stack, n
}
