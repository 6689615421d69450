package render_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeforge/grid"
	"github.com/katalvlaran/mazeforge/render"
)

//------------------------------------------------------------------------------
// FitCellSize
//------------------------------------------------------------------------------

func TestFitCellSize(t *testing.T) {
	cases := []struct {
		name          string
		w, h, cell    int
		maxSide, want int
	}{
		{"FitsAlready", 21, 21, 40, 16000, 40},
		{"WideScaled", 500, 250, 40, 16000, 32},
		{"TallScaled", 250, 800, 40, 16000, 20},
		{"ClampZeroCell", 10, 10, 0, 100, 1},
		{"NeverBelowOne", 20000, 1, 1, 16000, 1},
		{"NoCap", 1000, 1000, 50, 0, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.FitCellSize(tc.w, tc.h, tc.cell, tc.maxSide))
		})
	}
}

//------------------------------------------------------------------------------
// Rasterize
//------------------------------------------------------------------------------

func sample() *grid.Grid {
	g, _ := grid.Parse(
		"#####",
		"....#",
		"#.#.#",
		"#...#",
		"##.##",
	)
	return g
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRasterize_Palette(t *testing.T) {
	pal := render.DefaultPalette()
	img, err := render.Rasterize(sample(), 10)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())

	assert.Equal(t, pal.Path, rgba(img, 15, 15), "open cell center")
	assert.Equal(t, pal.Wall, rgba(img, 25, 25), "wall cell center")
	assert.Equal(t, pal.Wall, rgba(img, 0, 0), "corner is outside its bottom stroke")
	assert.Equal(t, pal.Outline, rgba(img, 25, 20), "top edge of (2,2) faces (2,1)")
	assert.Equal(t, pal.Outline, rgba(img, 29, 25), "right edge of (2,2) faces (3,2)")
	assert.Equal(t, pal.Outline, rgba(img, 9, 25), "right edge of (0,2) faces (1,2)")
	assert.Equal(t, pal.Wall, rgba(img, 22, 25), "stroke is two pixels wide")
}

func TestRasterize_NoOutline(t *testing.T) {
	img, err := render.Rasterize(sample(), 10, render.WithOutlineWidth(0))
	require.NoError(t, err)
	assert.Equal(t, render.DefaultPalette().Wall, rgba(img, 25, 20))
}

func TestRasterize_MaxSide(t *testing.T) {
	g := grid.New(840, 840, 40)
	require.Equal(t, 21, g.Width)
	img, err := render.Rasterize(g, 40, render.WithMaxSide(420))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 420, 420), img.Bounds())
}

// TestRasterize_MaxSideAtCellOne downscales a grid wider than the cap even
// though the cell size cannot shrink further.
func TestRasterize_MaxSideAtCellOne(t *testing.T) {
	g, err := grid.NewBlank(301, 5)
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < 150; x++ {
			g.Set(grid.Position{X: x, Y: y}, grid.Wall)
		}
	}
	img, err := render.Rasterize(g, 1, render.WithMaxSide(100), render.WithOutlineWidth(0))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 100)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), 99)
	assert.Equal(t, 1, img.Bounds().Dy())

	p := render.DefaultPalette()
	assert.Equal(t, p.Wall, rgba(img, 0, 0))
	assert.Equal(t, p.Path, rgba(img, img.Bounds().Dx()-1, 0))

	tall, err := grid.NewBlank(5, 20001)
	require.NoError(t, err)
	img, err = render.Rasterize(tall, 40)
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dy(), render.DefaultMaxSide)
}

func TestFitSide(t *testing.T) {
	w, h := render.FitSide(300, 150, 1000)
	assert.Equal(t, [2]int{300, 150}, [2]int{w, h})
	w, h = render.FitSide(400, 200, 100)
	assert.Equal(t, [2]int{100, 50}, [2]int{w, h})
	w, h = render.FitSide(1000, 1, 10)
	assert.Equal(t, [2]int{10, 1}, [2]int{w, h})
	w, h = render.FitSide(400, 200, 0)
	assert.Equal(t, [2]int{400, 200}, [2]int{w, h})
}

func TestRasterize_Noise(t *testing.T) {
	a, err := render.Rasterize(sample(), 10, render.WithNoise(rand.New(rand.NewSource(3)), 0))
	require.NoError(t, err)
	b, err := render.Rasterize(sample(), 10, render.WithNoise(rand.New(rand.NewSource(3)), 0))
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix, "same seed, same noise")

	base := render.DefaultPalette().Path
	c := rgba(a, 15, 15)
	assert.InDelta(t, float64(base.R), float64(c.R), render.DefaultNoise)
	assert.InDelta(t, float64(base.G), float64(c.G), render.DefaultNoise)
	assert.InDelta(t, float64(base.B), float64(c.B), render.DefaultNoise)
	assert.Equal(t, uint8(255), c.A)
}

func TestRasterize_Errors(t *testing.T) {
	_, err := render.Rasterize(nil, 10)
	assert.ErrorIs(t, err, render.ErrNilGrid)

	for _, opt := range []render.Option{
		render.WithOutlineWidth(-1),
		render.WithMaxSide(0),
		render.WithNoise(nil, 8),
	} {
		_, err := render.Rasterize(sample(), 10, opt)
		assert.ErrorIs(t, err, render.ErrOptionViolation)
	}
}

//------------------------------------------------------------------------------
// Overlay & Markers
//------------------------------------------------------------------------------

func TestOverlay(t *testing.T) {
	img, err := render.Rasterize(sample(), 10)
	require.NoError(t, err)
	path := []grid.Position{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	red := render.DefaultPalette().Route

	out, err := render.Overlay(img, path, render.CellMapper{Size: 10}, red)
	require.NoError(t, err)
	assert.Equal(t, red, rgba(out, 5, 15))
	assert.Equal(t, red, rgba(out, 15, 25))

	gray := rgba(out, 35, 35)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, gray.G, gray.B)

	_, err = render.Overlay(nil, path, render.CellMapper{Size: 10}, red)
	assert.ErrorIs(t, err, render.ErrNilImage)
}

func TestMarkers(t *testing.T) {
	g := sample()
	img, err := render.Rasterize(g, 20)
	require.NoError(t, err)
	before := image.NewRGBA(img.Bounds())
	draw.Draw(before, img.Bounds(), img, image.Point{}, draw.Src)

	m := render.CellMapper{Size: 20}
	entrance, exit := grid.Position{X: 0, Y: 1}, grid.Position{X: 2, Y: 4}
	require.NoError(t, render.Markers(img, g, m, entrance, exit, color.RGBA{G: 180, A: 255}))

	changed := func(r image.Rectangle) bool {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.RGBAAt(x, y) != before.RGBAAt(x, y) {
					return true
				}
			}
		}
		return false
	}
	assert.True(t, changed(m.Rect(entrance)))
	assert.True(t, changed(m.Rect(exit)))
	assert.False(t, changed(m.Rect(grid.Position{X: 2, Y: 2})))

	err = render.Markers(img, g, m, grid.Position{X: 1, Y: 1}, exit, color.Black)
	assert.Error(t, err)
}

// TestMarkers_Direction checks the entrance arrow on the left border points
// right, into the maze: the head fills the upper right of the cell while
// the shaft stays narrow on the left.
func TestMarkers_Direction(t *testing.T) {
	g := sample()
	img, err := render.Rasterize(g, 20)
	require.NoError(t, err)
	path := img.RGBAAt(8, 22)

	green := color.RGBA{G: 180, A: 255}
	m := render.CellMapper{Size: 20}
	require.NoError(t, render.Markers(img, g, m, grid.Position{X: 0, Y: 1}, grid.Position{X: 2, Y: 4}, green))

	assert.Equal(t, green, img.RGBAAt(11, 22), "arrow head")
	assert.Equal(t, path, img.RGBAAt(8, 22), "beside the shaft")
	assert.Equal(t, green, img.RGBAAt(1, 30), "shaft")
}

//------------------------------------------------------------------------------
// PNG I/O
//------------------------------------------------------------------------------

func TestPNGRoundTrip(t *testing.T) {
	img, err := render.Rasterize(sample(), 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, img))
	back, err := render.DecodePNG(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, rgba(img, 6, 10), rgba(back, 6, 10))

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, render.SavePNG(path, img))
	loaded, err := render.LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), loaded.Bounds())

	_, err = render.LoadPNG(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	_, err = render.DecodePNG(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)
	assert.ErrorIs(t, render.EncodePNG(&buf, nil), render.ErrNilImage)
}

// forgeDimensions rewrites the IHDR width and height of an encoded PNG and
// fixes the chunk checksum, leaving the pixel data untouched.
func forgeDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestDecodePNGLimit(t *testing.T) {
	img, err := render.Rasterize(sample(), 4)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, img))
	data := buf.Bytes()

	back, err := render.DecodePNGLimit(bytes.NewReader(data), 400)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, rgba(img, 6, 10), rgba(back, 6, 10))

	_, err = render.DecodePNGLimit(bytes.NewReader(data), 399)
	assert.ErrorIs(t, err, render.ErrImageTooLarge)

	back, err = render.DecodePNGLimit(bytes.NewReader(data), 0)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())

	huge := forgeDimensions(t, data, 100000, 100000)
	_, err = render.DecodePNGLimit(bytes.NewReader(huge), render.DefaultMaxPixels)
	assert.ErrorIs(t, err, render.ErrImageTooLarge)

	_, err = render.DecodePNGLimit(bytes.NewReader([]byte("not a png")), 100)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, render.ErrImageTooLarge)
}
