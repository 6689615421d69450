// Package solver provides tunable options and error definitions
// for breadth-first path search over a grid.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeforge/grid"
)

// Sentinel errors for invalid solver input. An unreachable goal is not an
// error; it is reported through Result.Found.
var (
	// ErrNilMap is returned if a nil Map is passed.
	ErrNilMap = errors.New("solver: map is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the map.
	ErrOutOfBounds = errors.New("solver: position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Map is the passability view the solver walks. *grid.Grid satisfies it.
type Map interface {
	InBounds(p grid.Position) bool
	IsOpen(p grid.Position) bool
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// OnVisit is called when a cell is dequeued, with its distance in steps
	// from the start.
	OnVisit func(p grid.Position, depth int)

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(grid.Position, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to paths of at most d steps.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a search.
//   - Found reports whether goal was reached.
//   - Path runs from start to goal inclusive when Found; nil otherwise.
//     start == goal yields a single-cell path.
//   - Visited counts dequeued cells.
type Result struct {
	Found   bool            `json:"found"`
	Path    []grid.Position `json:"path,omitempty"`
	Visited int             `json:"visited"`
}

// Steps is the number of moves on the path, or -1 when nothing was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
