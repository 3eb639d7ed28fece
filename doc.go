// Package pipeloop traces the closed pipe loop of a puzzle grid and measures
// the area it encloses.
//
// What is pipeloop?
//
//	A small, dependency-light pipeline over a text grid of pipe glyphs:
//		• pipegrid/ — Direction, Connector, Cell, Grid types and the text parser
//		• loop/     — start inference, loop walking, turning total, junk removal
//		• region/   — side-seeded iterative flood fill and area counting
//
// The root package wires the stages together:
//
//	Parse → ResolveStart → Trace → Curvature → DiscardJunk → Classify → InteriorArea
//
// and exposes the two puzzle answers as plain functions:
//
//	LoopHalfLength(text)  // steps from the start to the farthest loop cell
//	EnclosedArea(text)    // empty cells strictly inside the loop
//
// Quick ASCII example:
//
//	.....
//	.S-7.      S resolves to F; the loop has 8 cells,
//	.|.|.      so the farthest cell is 4 steps away,
//	.L-J.      and exactly one cell is enclosed.
//	.....
//
// Everything runs synchronously on a grid owned by a single call; there are
// no goroutines and no shared state between calls.
//
// The cmd/pipeloop binary reads a puzzle file and prints both answers.
package pipeloop
