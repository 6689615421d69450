// Package grid provides the wall/open cell grid that mazes are built on.
// It supports:
//
//   - Pixel-to-cell dimensioning with odd-forcing and a 5-cell floor
//   - Border walls and entrance/exit portal placement
//   - 4-connected neighbor inspection over interior cells
//
// A Grid is exclusively owned by whoever is mutating it; it is not safe for
// concurrent mutation.
package grid

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
)

// Grid is a rectangular array of Open/Wall cells stored in row-major order.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// Dimensions converts a pixel canvas into grid dimensions: each axis is
// px/cellSize, decremented when even, floored at MinSide. A cellSize below 1
// is treated as 1.
// Complexity: O(1).
func Dimensions(widthPx, heightPx, cellSize int) (w, h int) {
	if cellSize < 1 {
		cellSize = 1
	}
	return oddFloor(widthPx / cellSize), oddFloor(heightPx / cellSize)
}

func oddFloor(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < MinSide {
		n = MinSide
	}
	return n
}

// New returns an all-open grid sized by Dimensions(widthPx, heightPx, cellSize).
// Complexity: O(W×H).
func New(widthPx, heightPx, cellSize int) *Grid {
	w, h := Dimensions(widthPx, heightPx, cellSize)
	g, _ := NewBlank(w, h)
	return g
}

// NewBlank returns an all-open grid of exactly w×h cells.
// Returns ErrEmptyGrid if either side is not positive.
func NewBlank(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{Width: w, Height: h, cells: make([]Cell, w*h)}, nil
}

// FromCells builds a grid from rows of cells, rows[y][x]. The input is copied.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromCells(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := NewBlank(w, len(rows))
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Parse builds a grid from an ASCII picture where '#' is a wall and any
// other rune is open. It is the inverse of String.
func Parse(rows ...string) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, 0, len(row))
		for _, r := range row {
			if r == '#' {
				cells[y] = append(cells[y], Wall)
			} else {
				cells[y] = append(cells[y], Open)
			}
		}
	}
	return FromCells(cells)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsInterior reports whether p is inside the outer border ring.
func (g *Grid) IsInterior(p Position) bool {
	return p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1
}

// At returns the cell at p. Out-of-bounds positions read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p.X, p.Y)]
}

// IsOpen reports whether p is in bounds and Open.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p.X, p.Y)] == Open
}

// Set writes c at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if g.InBounds(p) {
		g.cells[g.index(p.X, p.Y)] = c
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Width: g.Width, Height: g.Height, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// CopyFrom overwrites g with the cells of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// SetBorderWalls marks the first and last row and column as Wall.
// Complexity: O(W+H).
func (g *Grid) SetBorderWalls() {
	for x := 0; x < g.Width; x++ {
		g.cells[g.index(x, 0)] = Wall
		g.cells[g.index(x, g.Height-1)] = Wall
	}
	for y := 0; y < g.Height; y++ {
		g.cells[g.index(0, y)] = Wall
		g.cells[g.index(g.Width-1, y)] = Wall
	}
}

// ChooseEntranceAndExit carves two portals into the border. The entrance
// is on the left border at a uniformly random interior row; the exit side is
// drawn uniformly from right, top and bottom, and its coordinate uniformly
// along that side's interior span. Both cells are set Open.
// Returns ErrNoInterior when the grid is too small to have an interior span.
func (g *Grid) ChooseEntranceAndExit(rng *rand.Rand) (entrance, exit Position, err error) {
	if g.Width < 3 || g.Height < 3 {
		return Position{}, Position{}, ErrNoInterior
	}
	entrance = Position{X: 0, Y: 1 + rng.Intn(g.Height-2)}

	switch exitSides[rng.Intn(len(exitSides))] {
	case Right:
		exit = Position{X: g.Width - 1, Y: 1 + rng.Intn(g.Height-2)}
	case Top:
		exit = Position{X: 1 + rng.Intn(g.Width-2), Y: 0}
	default:
		exit = Position{X: 1 + rng.Intn(g.Width-2), Y: g.Height - 1}
	}

	g.Set(entrance, Open)
	g.Set(exit, Open)
	return entrance, exit, nil
}

// SideOf reports which border side p lies on. ok is false for interior
// cells and for corners it returns the vertical side first.
func (g *Grid) SideOf(p Position) (s Side, ok bool) {
	switch {
	case p.X == 0:
		return Left, true
	case p.X == g.Width-1:
		return Right, true
	case p.Y == 0:
		return Top, true
	case p.Y == g.Height-1:
		return Bottom, true
	}
	return 0, false
}

// InteriorCount is the number of cells inside the border ring.
func (g *Grid) InteriorCount() int {
	if g.Width < 3 || g.Height < 3 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// InteriorWalls counts Wall cells inside the border ring.
// Complexity: O(W×H).
func (g *Grid) InteriorWalls() int {
	n := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.cells[g.index(x, y)] == Wall {
				n++
			}
		}
	}
	return n
}

// Interior lists interior positions whose cell equals c, in row-major order.
func (g *Grid) Interior(c Cell) []Position {
	var out []Position
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.cells[g.index(x, y)] == c {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// WallNeighbors counts 4-connected neighbors of p that are Wall.
// Out-of-bounds neighbors are not counted.
func (g *Grid) WallNeighbors(p Position) int {
	n := 0
	for _, d := range Offsets4 {
		q := p.Add(d)
		if g.InBounds(q) && g.cells[g.index(q.X, q.Y)] == Wall {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows[y][x].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := range rows {
		rows[y] = make([]Cell, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// String renders the grid as ASCII: '#' for walls, '.' for open cells,
// one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[g.index(x, y)] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type gridJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// MarshalJSON encodes the grid as its dimensions plus one ASCII string per row.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	return json.Marshal(gridJSON{Width: g.Width, Height: g.Height, Rows: rows})
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Width <= 0 || raw.Height <= 0 || len(raw.Rows) != raw.Height {
		return ErrEmptyGrid
	}
	cells := make([]Cell, 0, raw.Width*raw.Height)
	for _, row := range raw.Rows {
		if len(row) != raw.Width {
			return ErrNonRectangular
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '#':
				cells = append(cells, Wall)
			case '.':
				cells = append(cells, Open)
			default:
				return fmt.Errorf("%w: %q", ErrInvalidCell, row[i])
			}
		}
	}
	g.Width, g.Height, g.cells = raw.Width, raw.Height, cells
	return nil
}
