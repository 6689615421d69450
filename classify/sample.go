package classify

import (
	"image"
	"image/color"

	"github.com/katalvlaran/mazeforge/grid"
)

// Layout maps grid cells to pixel blocks of an image. Block sides are the
// integer quotient of the image side by N; the last row and column absorb
// the remainder so every pixel belongs to exactly one block.
type Layout struct {
	Bounds image.Rectangle
	N      int
}

// NewLayout validates that bounds hold at least one pixel per block.
func NewLayout(bounds image.Rectangle, n int) (Layout, error) {
	if bounds.Dx() < n || bounds.Dy() < n {
		return Layout{}, ErrImageTooSmall
	}
	return Layout{Bounds: bounds, N: n}, nil
}

// Rect returns the pixel rectangle of cell p, clamped to Bounds.
func (l Layout) Rect(p grid.Position) image.Rectangle {
	cw, ch := l.Bounds.Dx()/l.N, l.Bounds.Dy()/l.N
	r := image.Rect(p.X*cw, p.Y*ch, (p.X+1)*cw, (p.Y+1)*ch).Add(l.Bounds.Min)
	if p.X == l.N-1 {
		r.Max.X = l.Bounds.Max.X
	}
	if p.Y == l.N-1 {
		r.Max.Y = l.Bounds.Max.Y
	}
	return r.Intersect(l.Bounds)
}

// Sample returns the mean color of each of the n×n blocks of img as
// means[y][x]. Colors are read through the non-premultiplied 8-bit model,
// so the channel order of the source encoding does not matter.
// Complexity: O(pixels).
func Sample(img image.Image, n int) ([][]RGB, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if n < 1 {
		return nil, ErrOptionViolation
	}
	l, err := NewLayout(img.Bounds(), n)
	if err != nil {
		return nil, err
	}
	means := make([][]RGB, n)
	for y := 0; y < n; y++ {
		means[y] = make([]RGB, n)
		for x := 0; x < n; x++ {
			means[y][x] = blockMean(img, l.Rect(grid.Position{X: x, Y: y}))
		}
	}
	return means, nil
}

func blockMean(img image.Image, r image.Rectangle) RGB {
	var sr, sg, sb float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			sr += float64(c.R)
			sg += float64(c.G)
			sb += float64(c.B)
		}
	}
	px := float64(r.Dx() * r.Dy())
	if px == 0 {
		return RGB{}
	}
	return RGB{R: sr / px, G: sg / px, B: sb / px}
}
