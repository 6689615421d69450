// Package render rasterizes grids with square cells and decorates solved
// images.
package render

import (
	"image"
	"image/draw"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazeforge/grid"
)

// FitCellSize returns the cell size to use for a w×h grid so that neither
// raster side exceeds maxSide. Oversized requests are scaled down by the
// same factor on both axes; the result is never below 1.
func FitCellSize(w, h, cell, maxSide int) int {
	if cell < 1 {
		cell = 1
	}
	if maxSide < 1 || (w*cell <= maxSide && h*cell <= maxSide) {
		return cell
	}
	scale := float64(maxSide) / float64(w*cell)
	if s := float64(maxSide) / float64(h*cell); s < scale {
		scale = s
	}
	fitted := int(float64(cell) * scale)
	if fitted < 1 {
		fitted = 1
	}
	return fitted
}

// FitSide scales a w×h raster down so neither side exceeds maxSide, keeping
// the aspect ratio. Sides never drop below 1.
func FitSide(w, h, maxSide int) (int, int) {
	if maxSide < 1 || (w <= maxSide && h <= maxSide) {
		return w, h
	}
	scale := float64(maxSide) / float64(w)
	if s := float64(maxSide) / float64(h); s < scale {
		scale = s
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// Rasterize paints g with square cells of the given size (after FitCellSize).
// Wall cells are filled with Palette.Wall, open cells with Palette.Path, and
// every wall edge facing an open cell gets an OutlineWidth stroke.
// Noise, when enabled, is applied last.
//
// The result maps back to the grid through CellMapper{Size: cell}, where
// cell is image width / g.Width. A grid with more than MaxSide cells on a
// side is painted at cell 1 and downscaled to fit; that raster has no
// whole-cell mapping and image width / g.Width is 0.
func Rasterize(g *grid.Grid, cell int, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cell = FitCellSize(g.Width, g.Height, cell, o.MaxSide)
	img := image.NewRGBA(image.Rect(0, 0, g.Width*cell, g.Height*cell))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Palette.Path), image.Point{}, draw.Src)

	m := CellMapper{Size: cell}
	wall := image.NewUniform(o.Palette.Wall)
	for _, p := range cells(g, grid.Wall) {
		draw.Draw(img, m.Rect(p), wall, image.Point{}, draw.Src)
	}
	if o.OutlineWidth > 0 {
		outline(img, g, m, o.OutlineWidth, image.NewUniform(o.Palette.Outline))
	}
	if w, h := FitSide(img.Rect.Dx(), img.Rect.Dy(), o.MaxSide); w != img.Rect.Dx() || h != img.Rect.Dy() {
		small := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(small, small.Rect, image_utils.ResizeImage(img, w, h), image.Point{}, draw.Src)
		img = small
	}
	if o.Noise > 0 {
		jitter(img, o)
	}
	return img, nil
}

// cells lists every position of g holding c, border included.
func cells(g *grid.Grid, c grid.Cell) []grid.Position {
	var out []grid.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if g.At(p) == c {
				out = append(out, p)
			}
		}
	}
	return out
}

func outline(img *image.RGBA, g *grid.Grid, m CellMapper, width int, ink image.Image) {
	if width > m.Size {
		width = m.Size
	}
	for _, p := range cells(g, grid.Wall) {
		r := m.Rect(p)
		for _, d := range grid.Offsets4 {
			q := p.Add(d)
			if !g.InBounds(q) || !g.IsOpen(q) {
				continue
			}
			edge := r
			switch {
			case d[1] < 0:
				edge.Max.Y = r.Min.Y + width
			case d[1] > 0:
				edge.Min.Y = r.Max.Y - width
			case d[0] < 0:
				edge.Max.X = r.Min.X + width
			default:
				edge.Min.X = r.Max.X - width
			}
			draw.Draw(img, edge, ink, image.Point{}, draw.Src)
		}
	}
}

func jitter(img *image.RGBA, o Options) {
	span := 2*o.Noise + 1
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = clamp8(int(img.Pix[i+c]) + o.rng.Intn(span) - o.Noise)
		}
	}
}

func clamp8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
