// Package classify defines strategies, options and sentinel errors for
// turning a raster into a coarse passable/blocked grid.
package classify

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors for classification.
var (
	// ErrNilImage is returned when no image is supplied.
	ErrNilImage = errors.New("classify: image is nil")
	// ErrImageTooSmall is returned when the image has fewer pixels than
	// blocks along an axis.
	ErrImageTooSmall = errors.New("classify: image smaller than grid")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("classify: invalid option supplied")
)

// Defaults matching the 17×17 reference solver.
const (
	DefaultGridSize  = 17
	DefaultPortalRow = 8
)

// RGB is a mean block color with 8-bit channel scale (0..255).
type RGB struct {
	R, G, B float64
}

// Sum is R+G+B, the brightness measure used by GreenObstacle.
func (c RGB) Sum() float64 { return c.R + c.G + c.B }

// Strategy decides whether a block color is an obstacle.
type Strategy interface {
	Blocked(c RGB) bool
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(c RGB) bool

// Blocked calls f(c).
func (f StrategyFunc) Blocked(c RGB) bool { return f(c) }

// GreenObstacle flags green-dominant blocks and near-black blocks:
//
//	G > R+GreenOverRed && G > B+GreenOverBlue && G > MinGreen
//	|| R+G+B < DarkSum
//
// The thresholds assume channels in R, G, B order.
type GreenObstacle struct {
	GreenOverRed  float64
	GreenOverBlue float64
	MinGreen      float64
	DarkSum       float64
}

// DefaultGreenObstacle returns the reference thresholds 15/10/100/200.
func DefaultGreenObstacle() GreenObstacle {
	return GreenObstacle{GreenOverRed: 15, GreenOverBlue: 10, MinGreen: 100, DarkSum: 200}
}

// Blocked implements Strategy.
func (s GreenObstacle) Blocked(c RGB) bool {
	green := c.G > c.R+s.GreenOverRed && c.G > c.B+s.GreenOverBlue && c.G > s.MinGreen
	return green || c.Sum() < s.DarkSum
}

// LabObstacle classifies in CIE-L*a*b* space, which is less sensitive to
// lighting than raw channel differences. A block is blocked when its
// lightness is below MaxDarkness or its a* component is more negative
// (greener) than -MinGreenness. Values use go-colorful's scale: L in [0,1],
// a* roughly in [-1,1].
type LabObstacle struct {
	MaxDarkness  float64
	MinGreenness float64
}

// DefaultLabObstacle separates the rendered wall and floor palettes.
func DefaultLabObstacle() LabObstacle {
	return LabObstacle{MaxDarkness: 0.3, MinGreenness: 0.08}
}

// Blocked implements Strategy.
func (s LabObstacle) Blocked(c RGB) bool {
	l, a, _ := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Lab()
	return l < s.MaxDarkness || a < -s.MinGreenness
}

// Option configures Classify via functional arguments.
type Option func(*Options)

// Options holds classification parameters.
type Options struct {
	// GridSize is the number of blocks per side.
	GridSize int
	// PortalRow is the row of the entrance (left) and exit (right) cells.
	PortalRow int
	// Strategy classifies each block's mean color.
	Strategy Strategy

	portalRowSet bool
	err          error
}

// DefaultOptions returns a 17×17 grid, portal row 8 and GreenObstacle.
func DefaultOptions() Options {
	return Options{
		GridSize:  DefaultGridSize,
		PortalRow: DefaultPortalRow,
		Strategy:  DefaultGreenObstacle(),
	}
}

// WithGridSize sets the number of blocks per side (at least 3). Unless
// WithPortalRow is also given, the portal row moves to n/2.
func WithGridSize(n int) Option {
	return func(o *Options) {
		if n < 3 {
			o.err = fmt.Errorf("%w: grid size must be at least 3 (%d)", ErrOptionViolation, n)
			return
		}
		o.GridSize = n
		if !o.portalRowSet {
			o.PortalRow = n / 2
		}
	}
}

// WithPortalRow sets the entrance/exit row. It must be an interior row.
func WithPortalRow(row int) Option {
	return func(o *Options) {
		o.PortalRow = row
		o.portalRowSet = true
	}
}

// WithStrategy replaces the obstacle heuristic.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}

func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.PortalRow < 1 || o.PortalRow > o.GridSize-2 {
		return fmt.Errorf("%w: portal row %d outside 1..%d", ErrOptionViolation, o.PortalRow, o.GridSize-2)
	}
	return nil
}
