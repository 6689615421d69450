// Package connectivity decides and enforces reachability between two cells
// of a grid.Grid under 4-connectivity.
//
// What:
//
//   - ReachableSet: explicit-stack flood fill returning every Open cell
//     reachable from a seed.
//   - IsConnected: early-exit reachability test between two cells.
//   - ForceConnect: crude Manhattan-staircase carving (x first, then y)
//     used as a fallback after probabilistic generation steps.
//   - CarveMinimal: 0–1 BFS carving that opens the fewest interior walls.
//   - Components: union-find labelling of Open regions.
//
// Why:
//
//   - Maze synthesis must never hand out a grid whose exit cannot be reached
//     from its entrance; every mutating phase is followed by a repair.
//   - An explicit stack keeps flood fill safe on large grids where recursion
//     depth would grow with the region size.
//
// Complexity:
//
//   - ReachableSet, IsConnected: O(W×H) time and memory.
//   - ForceConnect: O(W×H) for the check plus at most W+H carving steps.
//   - CarveMinimal: O(W×H).
//   - Components: O(W×H·α(W×H)).
package connectivity
