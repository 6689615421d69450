package grid_test

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeforge/grid"
)

//----------------------------------------------------------------------------//
// Dimensions and construction
//----------------------------------------------------------------------------//

// TestDimensions verifies odd-forcing and the MinSide floor.
func TestDimensions(t *testing.T) {
	cases := []struct {
		name           string
		wPx, hPx, cell int
		wantW, wantH   int
	}{
		{"OddAlready", 210, 210, 10, 21, 21},
		{"EvenForcedDown", 200, 160, 10, 19, 15},
		{"FloorAtFive", 20, 10, 10, 5, 5},
		{"ZeroCellClamped", 9, 7, 0, 9, 7},
		{"Rectangular", 1000, 400, 40, 25, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := grid.Dimensions(tc.wPx, tc.hPx, tc.cell)
			assert.Equal(t, tc.wantW, w, "width")
			assert.Equal(t, tc.wantH, h, "height")
		})
	}
}

// TestNewBlank_Errors ensures non-positive sides are rejected.
func TestNewBlank_Errors(t *testing.T) {
	_, err := grid.NewBlank(0, 3)
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid))
	_, err = grid.NewBlank(3, -1)
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid))
}

// TestFromCells_Errors ensures empty and ragged inputs are rejected.
func TestFromCells_Errors(t *testing.T) {
	_, err := grid.FromCells(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.FromCells([][]grid.Cell{{grid.Open}, {}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestParseAndString round-trips an ASCII picture.
func TestParseAndString(t *testing.T) {
	g, err := grid.Parse(
		"#####",
		"..#..",
		"#####",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, "#####\n..#..\n#####\n", g.String())
	assert.Equal(t, grid.Wall, g.At(grid.Position{X: 2, Y: 1}))
	assert.True(t, g.IsOpen(grid.Position{X: 0, Y: 1}))
}

// TestInBoundsAndAt checks bounds handling; out-of-bounds reads are walls.
func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.NewBlank(3, 2)
	require.NoError(t, err)

	for _, p := range []grid.Position{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds%v", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds%v", p)
		assert.Equal(t, grid.Wall, g.At(p))
		assert.False(t, g.IsOpen(p))
	}
	// writes outside are ignored rather than panicking
	g.Set(grid.Position{X: 9, Y: 9}, grid.Wall)
}

//----------------------------------------------------------------------------//
// Border and portals
//----------------------------------------------------------------------------//

// TestSetBorderWalls verifies that exactly the outer ring is walled.
func TestSetBorderWalls(t *testing.T) {
	g := grid.New(70, 50, 10) // 7×5
	g.SetBorderWalls()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if g.IsInterior(p) {
				assert.Equal(t, grid.Open, g.At(p), "interior %v", p)
			} else {
				assert.Equal(t, grid.Wall, g.At(p), "border %v", p)
			}
		}
	}
	assert.Equal(t, 15, g.InteriorCount())
	assert.Equal(t, 0, g.InteriorWalls())
}

// TestChooseEntranceAndExit checks portal invariants over many seeds:
// entrance on the left interior span, exit on another side's interior span,
// both open.
func TestChooseEntranceAndExit(t *testing.T) {
	sides := map[grid.Side]int{}
	for seed := int64(0); seed < 200; seed++ {
		g := grid.New(110, 90, 10) // 11×9
		g.SetBorderWalls()
		in, out, err := g.ChooseEntranceAndExit(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		assert.Equal(t, 0, in.X)
		assert.True(t, in.Y >= 1 && in.Y <= g.Height-2, "entrance row %d", in.Y)
		assert.True(t, g.IsOpen(in))
		assert.True(t, g.IsOpen(out))

		side, ok := g.SideOf(out)
		require.True(t, ok, "exit %v not on border", out)
		require.NotEqual(t, grid.Left, side)
		sides[side]++
		switch side {
		case grid.Right:
			assert.True(t, out.Y >= 1 && out.Y <= g.Height-2)
		case grid.Top, grid.Bottom:
			assert.True(t, out.X >= 1 && out.X <= g.Width-2)
		}
	}
	// every exit side is reachable by the sampler
	assert.Len(t, sides, 3)
}

// TestChooseEntranceAndExit_NoInterior rejects degenerate grids.
func TestChooseEntranceAndExit_NoInterior(t *testing.T) {
	g, err := grid.NewBlank(2, 7)
	require.NoError(t, err)
	_, _, err = g.ChooseEntranceAndExit(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, grid.ErrNoInterior)
}

//----------------------------------------------------------------------------//
// Neighborhood helpers
//----------------------------------------------------------------------------//

// TestWallNeighbors counts cardinal walls only.
//
//	#.#
//	...
//	###
func TestWallNeighbors(t *testing.T) {
	g, err := grid.Parse("#.#", "...", "###")
	require.NoError(t, err)
	assert.Equal(t, 1, g.WallNeighbors(grid.Position{X: 1, Y: 1}))
	assert.Equal(t, 2, g.WallNeighbors(grid.Position{X: 0, Y: 1}))
	assert.Equal(t, 2, g.WallNeighbors(grid.Position{X: 1, Y: 0}))
}

// TestInteriorListing returns interior cells of the given kind in row-major order.
func TestInteriorListing(t *testing.T) {
	g, err := grid.Parse(
		"#####",
		"#.#.#",
		"##..#",
		"#####",
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{2, 1}, {1, 2}}, g.Interior(grid.Wall))
	assert.Equal(t, []grid.Position{{1, 1}, {3, 1}, {2, 2}, {3, 2}}, g.Interior(grid.Open))
	assert.Equal(t, 2, g.InteriorWalls())
}

// TestClone verifies deep copy semantics.
func TestClone(t *testing.T) {
	g := grid.New(50, 50, 10)
	cp := g.Clone()
	cp.Set(grid.Position{X: 2, Y: 2}, grid.Wall)
	assert.Equal(t, grid.Open, g.At(grid.Position{X: 2, Y: 2}))
	g.CopyFrom(cp)
	assert.Equal(t, grid.Wall, g.At(grid.Position{X: 2, Y: 2}))
}

// TestJSON checks that MarshalJSON and UnmarshalJSON agree and that bad
// payloads are rejected.
func TestJSON(t *testing.T) {
	g, err := grid.Parse("#.#", "...", "###")
	require.NoError(t, err)
	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":3,"height":3,"rows":["#.#","...","###"]}`, string(data))

	var back grid.Grid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.String(), back.String())

	err = json.Unmarshal([]byte(`{"width":2,"height":1,"rows":["#x"]}`), &back)
	assert.ErrorIs(t, err, grid.ErrInvalidCell)
	err = json.Unmarshal([]byte(`{"width":2,"height":1,"rows":["#"]}`), &back)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}
