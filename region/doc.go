// Package region classifies the empty cells of a pipe grid as inside or
// outside a traced loop, and counts the result.
//
// What:
//
//   - Classify: walks the loop once, seeds an iterative flood fill on each
//     side of every loop cell, and tags every reached empty cell Interior or
//     Exterior. No ray casting or polygon area is involved: the inside side
//     is picked from the heading at each cell and the sign of the loop's
//     total curvature.
//   - Fill: the worklist flood fill on its own.
//   - InteriorArea / Summarize: pure reads over a classified grid.
//
// Seeding:
//
//	For a loop cell entered with heading hin and left with heading hout, the
//	side of a heading h is CW(h) when curvature > 0 and CCW(h) when it is
//	negative. Seeds are the cells one step toward side(hout) and side(hin),
//	plus, at a corner, the diagonal cell one step toward both.
//
// The grid border reads as an already-tagged Exterior cell, so fills stop
// there without special cases. Pipes not on the loop must be cleared first
// (see loop.DiscardJunk); left in place they act as walls and hide interior
// cells from every seed.
//
// Complexity:
//
//   - Classify:   O(W×H + L) time, O(W×H) worst-case worklist.
//   - Fill:       O(cells reached).
//   - Summarize:  O(W×H).
package region
