package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeforge/classify"
	"github.com/katalvlaran/mazeforge/grid"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/solver"
	"github.com/katalvlaran/mazeforge/synth"
)

// TestPipeline_RenderClassifySolve renders synthesized 17×17 mazes, reads
// them back with the classifier and checks that the recovered interior and
// the shortest path match the source grid.
func TestPipeline_RenderClassifySolve(t *testing.T) {
	req := synth.Request{WidthPx: 170, HeightPx: 170, CellSize: 10, Walls: 60}
	strategies := map[string]classify.Strategy{
		"Green": classify.DefaultGreenObstacle(),
		"Lab":   classify.DefaultLabObstacle(),
	}

	for seed := int64(1); seed <= 5; seed++ {
		m, err := synth.FromSeed(seed, req)
		require.NoError(t, err)
		require.Equal(t, 17, m.Grid.Width)

		img, err := render.Rasterize(m.Grid, m.CellSize, render.WithOutlineWidth(0))
		require.NoError(t, err)

		want, err := solver.Solve(m.Grid, m.Entrance, m.Exit)
		require.NoError(t, err)
		require.True(t, want.Found)

		for name, s := range strategies {
			c, err := classify.Classify(img, classify.WithStrategy(s))
			require.NoError(t, err, name)

			for _, p := range m.Grid.Interior(grid.Wall) {
				assert.False(t, c.Grid.IsOpen(p), "%s seed %d wall %v", name, seed, p)
			}
			for _, p := range m.Grid.Interior(grid.Open) {
				assert.True(t, c.Grid.IsOpen(p), "%s seed %d open %v", name, seed, p)
			}

			// the classifier walls the ring and opens its own portals; restore
			// the synthesized border, including cells the repair carved on it
			copyBorder(c.Grid, m.Grid)
			got, err := solver.Solve(c.Grid, m.Entrance, m.Exit)
			require.NoError(t, err)
			require.True(t, got.Found, name)
			assert.Equal(t, want.Steps(), got.Steps(), name)
		}
	}
}

// copyBorder overwrites the border ring of dst with that of src.
func copyBorder(dst, src *grid.Grid) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if p := (grid.Position{X: x, Y: y}); !src.IsInterior(p) {
				dst.Set(p, src.At(p))
			}
		}
	}
}

func openBorder(g *grid.Grid) []grid.Position {
	var out []grid.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if !g.IsInterior(p) && g.IsOpen(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// TestPipeline_BorderCarvedByRepair covers a maze whose staircase repair ran
// along the right border: the classifier closes those cells with the rest of
// the ring, and the path only survives once the synthesized border is copied back.
func TestPipeline_BorderCarvedByRepair(t *testing.T) {
	req := synth.Request{WidthPx: 170, HeightPx: 170, CellSize: 10, Walls: 60}
	m, err := synth.FromSeed(1, req)
	require.NoError(t, err)

	carved := openBorder(m.Grid)
	require.Greater(t, len(carved), 2, "repair opened border cells besides the portals\n%s", m.Grid)
	require.NotEmpty(t, m.Stats.Repairs)

	img, err := render.Rasterize(m.Grid, m.CellSize, render.WithOutlineWidth(0))
	require.NoError(t, err)
	c, err := classify.Classify(img)
	require.NoError(t, err)
	for _, p := range carved {
		if p != c.Entrance && p != c.Exit {
			assert.False(t, c.Grid.IsOpen(p), "%v", p)
		}
	}

	want, err := solver.Solve(m.Grid, m.Entrance, m.Exit)
	require.NoError(t, err)
	require.True(t, want.Found)

	copyBorder(c.Grid, m.Grid)
	got, err := solver.Solve(c.Grid, m.Entrance, m.Exit)
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, want.Steps(), got.Steps())
}

// TestPipeline_Overlay paints a solved path back onto the source raster
// through the classifier's layout.
func TestPipeline_Overlay(t *testing.T) {
	m, err := synth.FromSeed(11, synth.Request{WidthPx: 170, HeightPx: 170, CellSize: 10, Walls: 40})
	require.NoError(t, err)
	img, err := render.Rasterize(m.Grid, m.CellSize, render.WithOutlineWidth(0))
	require.NoError(t, err)

	c, err := classify.Classify(img)
	require.NoError(t, err)
	res, err := solver.Solve(m.Grid, m.Entrance, m.Exit)
	require.NoError(t, err)
	require.True(t, res.Found)

	red := render.DefaultPalette().Route
	out, err := render.Overlay(img, res.Path, c.Layout, red)
	require.NoError(t, err)
	for _, p := range res.Path {
		r := c.Layout.Rect(p)
		assert.Equal(t, red, rgba(out, r.Min.X, r.Min.Y), "%v", p)
	}
}
