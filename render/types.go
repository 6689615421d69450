// Package render defines palettes, options and sentinel errors for turning
// grids into rasters and decorating solved images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/katalvlaran/mazeforge/grid"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned when Rasterize receives no grid.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrNilImage is returned when an overlay source is nil.
	ErrNilImage = errors.New("render: image is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
	// ErrImageTooLarge is returned by DecodePNGLimit for oversized headers.
	ErrImageTooLarge = errors.New("render: image too large")
)

// Raster defaults.
const (
	// DefaultMaxSide caps either raster side; larger requests shrink the
	// cell size proportionally.
	DefaultMaxSide = 16000
	// DefaultOutlineWidth is the stroke width, in pixels, of wall edges that
	// face open cells.
	DefaultOutlineWidth = 2
	// DefaultNoise is the per-channel amplitude used by WithNoise when the
	// caller passes a non-positive intensity.
	DefaultNoise = 8
	// DefaultMaxPixels bounds decoded uploads (8192×8192).
	DefaultMaxPixels = 1 << 26
)

// Palette holds the colors used by Rasterize and Overlay.
type Palette struct {
	Wall    color.RGBA
	Path    color.RGBA
	Outline color.RGBA
	Route   color.RGBA
}

// DefaultPalette is a green hedge on a sandy floor with black outlines and
// a red route.
func DefaultPalette() Palette {
	return Palette{
		Wall:    color.RGBA{R: 126, G: 148, B: 103, A: 255},
		Path:    color.RGBA{R: 140, G: 136, B: 117, A: 255},
		Outline: color.RGBA{A: 255},
		Route:   color.RGBA{R: 255, A: 255},
	}
}

// Mapper maps a grid cell to its pixel rectangle. classify.Layout and
// CellMapper both satisfy it.
type Mapper interface {
	Rect(p grid.Position) image.Rectangle
}

// CellMapper maps cells to square blocks of Size pixels anchored at the
// origin, the layout Rasterize produces.
type CellMapper struct {
	Size int
}

// Rect implements Mapper.
func (m CellMapper) Rect(p grid.Position) image.Rectangle {
	return image.Rect(p.X*m.Size, p.Y*m.Size, (p.X+1)*m.Size, (p.Y+1)*m.Size)
}

// Option configures Rasterize.
type Option func(*Options)

// Options holds raster parameters.
type Options struct {
	Palette      Palette
	OutlineWidth int
	MaxSide      int
	// Noise is the uniform per-channel jitter amplitude; 0 disables it.
	Noise int

	rng *rand.Rand
	err error
}

// DefaultOptions returns the default palette, 2px outlines, the 16000px cap
// and no noise.
func DefaultOptions() Options {
	return Options{
		Palette:      DefaultPalette(),
		OutlineWidth: DefaultOutlineWidth,
		MaxSide:      DefaultMaxSide,
	}
}

// WithPalette replaces the colors.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// WithOutlineWidth sets the outline stroke; 0 disables outlines.
func WithOutlineWidth(px int) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: outline width must be non-negative (%d)", ErrOptionViolation, px)
			return
		}
		o.OutlineWidth = px
	}
}

// WithMaxSide sets the raster side cap.
func WithMaxSide(px int) Option {
	return func(o *Options) {
		if px < 1 {
			o.err = fmt.Errorf("%w: max side must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.MaxSide = px
	}
}

// WithNoise adds uniform ±intensity jitter to every channel, drawn from rng.
// A non-positive intensity selects DefaultNoise.
func WithNoise(rng *rand.Rand, intensity int) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: noise requires a random source", ErrOptionViolation)
			return
		}
		if intensity <= 0 {
			intensity = DefaultNoise
		}
		o.rng = rng
		o.Noise = intensity
	}
}
