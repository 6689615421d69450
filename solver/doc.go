// Package solver recovers the shortest entrance-to-exit path over a grid of
// passable and blocked cells.
//
// What
//
//   - Solve runs a FIFO breadth-first search over 4-connected Open cells of
//     any Map (grid.Grid, or a classified raster from package classify).
//   - Result.Found distinguishes "no path" from a real path; a start equal
//     to the goal is a one-cell path, not an empty one.
//   - WithOnVisit observes the visit order; WithMaxDepth bounds the search.
//
// Determinism
//
//	Neighbors are expanded in E, S, W, N order, so ties between equally short
//	paths are always broken the same way.
//
// Complexity (C = cells)
//
//   - Time:   O(C)
//   - Memory: O(C) for the queue and parent links.
package solver
