// Package classify partitions a raster into a coarse grid of blocks and
// marks each block passable or blocked from its mean color.
package classify

import (
	"image"

	"github.com/katalvlaran/mazeforge/grid"
)

// Classification is the solver-ready view of an image.
//   - Grid holds Open (passable) and Wall (blocked) cells.
//   - Entrance and Exit are the two border cells left open on PortalRow.
//   - Layout maps cells back to pixel blocks for overlays.
type Classification struct {
	Grid     *grid.Grid
	Entrance grid.Position
	Exit     grid.Position
	Layout   Layout
}

// Classify samples img into GridSize×GridSize blocks and classifies each
// with the configured Strategy. The outer ring is then forced: top and
// bottom rows fully blocked; left and right columns blocked except at
// PortalRow, where the entrance (left) and exit (right) are forced open.
//
// Returns ErrNilImage, ErrImageTooSmall or ErrOptionViolation.
func Classify(img image.Image, opts ...Option) (*Classification, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	n := o.GridSize
	means, err := Sample(img, n)
	if err != nil {
		return nil, err
	}
	g, _ := grid.NewBlank(n, n)
	for y, row := range means {
		for x, c := range row {
			if o.Strategy.Blocked(c) {
				g.Set(grid.Position{X: x, Y: y}, grid.Wall)
			}
		}
	}

	g.SetBorderWalls()
	entrance := grid.Position{X: 0, Y: o.PortalRow}
	exit := grid.Position{X: n - 1, Y: o.PortalRow}
	g.Set(entrance, grid.Open)
	g.Set(exit, grid.Open)

	layout, _ := NewLayout(img.Bounds(), n)
	return &Classification{Grid: g, Entrance: entrance, Exit: exit, Layout: layout}, nil
}
