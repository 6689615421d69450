// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/mazeforge.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNoInterior indicates the grid has no interior span to place a portal on.
	ErrNoInterior = errors.New("grid: interior span is empty")
	// ErrInvalidCell indicates a serialized cell value other than Open or Wall.
	ErrInvalidCell = errors.New("grid: invalid cell value")
)

// MinSide is the smallest width or height New will produce. It guarantees
// a one-cell border ring around a non-empty interior.
const MinSide = 5

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Open cells are walkable.
	Open Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns "open" or "wall".
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Position is a 0-indexed (x, y) cell coordinate. X grows to the right,
// Y grows downward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by the offset d.
func (p Position) Add(d [2]int) Position {
	return Position{X: p.X + d[0], Y: p.Y + d[1]}
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Side names one of the four border sides of a grid.
type Side int

const (
	// Left is the x == 0 column.
	Left Side = iota
	// Right is the x == Width-1 column.
	Right
	// Top is the y == 0 row.
	Top
	// Bottom is the y == Height-1 row.
	Bottom
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// exitSides are the candidate sides for the exit portal. The entrance is
// always on Left.
var exitSides = [...]Side{Right, Top, Bottom}

// Offsets4 lists the 4-connected neighbor offsets in N, E, S, W order.
var Offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
