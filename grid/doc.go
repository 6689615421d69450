// Package grid models a maze as a fixed-size 2D array of Open/Wall cells
// with a solid border ring and two portals carved into it.
//
// What:
//
//   - Grid stores cells row-major; Position is a 0-indexed (x, y) pair.
//   - Dimensions/New convert a pixel canvas and a cell size into an odd
//     number of cells per axis, never fewer than MinSide.
//   - SetBorderWalls walls the outer ring; ChooseEntranceAndExit opens the
//     entrance on the left border and the exit on the right, top or bottom.
//   - WallNeighbors, Interior and InteriorWalls support the synthesis phases.
//
// Why:
//
//   - Odd dimensions give a symmetric interior with a single-cell border.
//   - Portal choice takes an explicit *rand.Rand so generation is reproducible.
//
// Complexity:
//
//   - New, Clone, InteriorWalls, Interior: O(W×H).
//   - SetBorderWalls: O(W+H).
//   - At, Set, InBounds, WallNeighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or no rows.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoInterior: grid too small to place a portal.
//   - ErrInvalidCell: unknown rune in serialized rows.
package grid
