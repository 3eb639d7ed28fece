// Package loop resolves the start connector of a pipe grid, walks the unique
// closed loop through it, and measures the loop's total turning.
//
// What:
//
//   - ResolveStart: infers the start cell's two open ends from the
//     neighbors that point back at it, and writes the connector into the grid.
//   - Trace / TraceFrom: follow "exit ≠ entry" from the start until it comes
//     back, yielding the ordered loop without a trailing duplicate.
//   - Curvature: sums the per-cell turn values over the cyclic loop; a simple
//     closed loop on a grid always totals +4 or −4.
//   - DiscardJunk: clears every pipe that is not on the loop.
//
// Conventions:
//
//   - Y grows downward, so a total of +4 is a clockwise loop on screen.
//   - The entry direction at a cell points back toward the previous loop
//     cell; the exit direction points toward the next one. A turn is +1 when
//     exit is entry rotated counter-clockwise, −1 when rotated clockwise.
//
// Complexity:
//
//   - ResolveStart: O(1).
//   - Trace:        O(L) time and memory (L = loop length), bounded by W×H steps.
//   - Curvature:    O(L).
//   - DiscardJunk:  O(W×H + L).
//
// Errors:
//
//   - ErrNotStart:       ResolveStart called on a cell that is not an unresolved start.
//   - ErrAmbiguousStart: the neighbor scan found other than two matches.
//   - ErrMalformedLoop:  the walk left the pipes, hit a connector that does not
//     accept the arrival direction, never came back, or the turning total is
//     not ±4.
package loop
