package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazeforge/grid"
)

// Overlay returns a grayscale copy of src with every cell of path filled
// with the route color. m maps cells to pixel blocks of src.
func Overlay(src image.Image, path []grid.Position, m Mapper, route color.Color) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	b := src.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	fill := image.NewUniform(route)
	for _, p := range path {
		draw.Draw(out, m.Rect(p).Intersect(b), fill, image.Point{}, draw.Src)
	}
	return out, nil
}

// Markers draws an arrow into the entrance cell pointing into the maze and
// one into the exit cell pointing out of it. Arrow direction follows the
// border side each portal sits on.
func Markers(img draw.Image, g *grid.Grid, m Mapper, entrance, exit grid.Position, c color.Color) error {
	for _, mk := range []struct {
		p       grid.Position
		outward bool
	}{{entrance, false}, {exit, true}} {
		side, ok := g.SideOf(mk.p)
		if !ok {
			return fmt.Errorf("render: %v is not a border cell", mk.p)
		}
		r := m.Rect(mk.p).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		arrow := outlinedArrow(side, mk.outward, c, r.Dx(), r.Dy())
		draw.Draw(img, r, arrow, arrow.Bounds().Min, draw.Over)
	}
	return nil
}

// outlinedArrow is a w×h arrow of color c with a white core.
func outlinedArrow(s grid.Side, outward bool, c color.Color, w, h int) image.Image {
	if !outward {
		s = opposite(s)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	outer := image_utils.ResizeImage(arrow{dir: s, c: c}, w, h)
	draw.Draw(out, out.Rect, outer, image.Point{}, draw.Over)
	if w < 4 || h < 4 {
		return out
	}
	inner := image_utils.ResizeImage(arrow{dir: s, c: color.White}, w/2, h/2)
	draw.Draw(out, image.Rect(w/4, h/4, w/4+w/2, h/4+h/2), inner, image.Point{}, draw.Over)
	return out
}

// arrowSide is the edge length of the unscaled arrow glyph.
const arrowSide = 16

// arrow is an arrowSide×arrowSide glyph pointing towards dir, transparent
// outside the shape.
type arrow struct {
	dir grid.Side
	c   color.Color
}

func (a arrow) ColorModel() color.Model { return color.RGBAModel }

func (a arrow) Bounds() image.Rectangle { return image.Rect(0, 0, arrowSide, arrowSide) }

// At rotates (x,y) onto a right-pointing glyph: a shaft over the left half
// and a triangular head over the right half.
func (a arrow) At(x, y int) color.Color {
	const n = arrowSide
	u, v := x, y
	switch a.dir {
	case grid.Left:
		u = n - 1 - x
	case grid.Top:
		u, v = n-1-y, x
	case grid.Bottom:
		u, v = y, x
	}
	fu, dv := float64(u)+0.5, float64(v)+0.5-n/2
	if dv < 0 {
		dv = -dv
	}
	if (fu < n/2 && dv < n/6) || (fu >= n/2 && dv < n-fu) {
		return a.c
	}
	return color.Transparent
}

func opposite(s grid.Side) grid.Side {
	switch s {
	case grid.Left:
		return grid.Right
	case grid.Right:
		return grid.Left
	case grid.Top:
		return grid.Bottom
	default:
		return grid.Top
	}
}
