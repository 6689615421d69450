// Package synth provides tunable options, request/result types and error
// definitions for maze synthesis.
package synth

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeforge/connectivity"
	"github.com/katalvlaran/mazeforge/grid"
)

// Sentinel errors for synthesis.
var (
	// ErrInvalidRequest is returned when a Request fails validation.
	ErrInvalidRequest = errors.New("synth: invalid request")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("synth: invalid option supplied")

	// ErrDisconnected is returned if the finished grid does not connect the
	// entrance to the exit. Every phase is followed by a repair, so this
	// signals a broken Repairer rather than bad luck.
	ErrDisconnected = errors.New("synth: entrance and exit are not connected")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("synth: random source is nil")
)

// Default tuning constants.
const (
	DefaultSmoothingThreshold  = 0.3
	DefaultSmoothingIterations = 2
	DefaultGrowthProbability   = 0.3
	DefaultGapStoneProbability = 0.15
)

// Phase identifies one step of the synthesis pipeline.
type Phase int

const (
	PhaseBorder Phase = iota
	PhasePortals
	PhaseScatter
	PhaseRepairScatter
	PhaseSmoothing
	PhaseRepairSmoothing
	PhaseCorrection
	PhaseRepairCorrection
	PhaseDecoration
)

var phaseNames = [...]string{
	PhaseBorder:           "border",
	PhasePortals:          "portals",
	PhaseScatter:          "scatter",
	PhaseRepairScatter:    "repair_scatter",
	PhaseSmoothing:        "smoothing",
	PhaseRepairSmoothing:  "repair_smoothing",
	PhaseCorrection:       "correction",
	PhaseRepairCorrection: "repair_correction",
	PhaseDecoration:       "decoration",
}

// String returns the snake_case phase name.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Request describes the maze to build: a pixel canvas, the pixel size of one
// cell and the number of interior walls to aim for.
type Request struct {
	WidthPx  int `json:"width_px" yaml:"width_px"`
	HeightPx int `json:"height_px" yaml:"height_px"`
	CellSize int `json:"cell_size" yaml:"cell_size"`
	Walls    int `json:"walls" yaml:"walls"`
}

// Validate reports ErrInvalidRequest for non-positive canvas sides or a
// negative wall count. A CellSize below 1 is accepted and treated as 1.
func (r Request) Validate() error {
	switch {
	case r.WidthPx <= 0 || r.HeightPx <= 0:
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrInvalidRequest, r.WidthPx, r.HeightPx)
	case r.Walls < 0:
		return fmt.Errorf("%w: wall count %d is negative", ErrInvalidRequest, r.Walls)
	}
	return nil
}

// Stats records what the pipeline did.
type Stats struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	Interior    int `json:"interior"`
	TargetWalls int `json:"target_walls"`
	FinalWalls  int `json:"final_walls"`

	// WallsAfter maps a phase name to the interior wall count after it ran.
	WallsAfter map[string]int `json:"walls_after"`
	// Repairs lists the repair phases that actually carved cells.
	Repairs []string `json:"repairs,omitempty"`
	// Smoothed is true when the density threshold triggered smoothing.
	Smoothed bool `json:"smoothed"`

	GapStonesKept     int `json:"gap_stones_kept"`
	GapStonesReverted int `json:"gap_stones_reverted"`

	// Regions is the number of 4-connected open regions in the final grid.
	Regions int `json:"regions"`
}

// Maze is a finished, connected grid together with its portals.
// The Grid must not be mutated after Generate returns.
type Maze struct {
	ID       uuid.UUID     `json:"id"`
	Seed     int64         `json:"seed"`
	Request  Request       `json:"request"`
	CellSize int           `json:"cell_size"`
	Grid     *grid.Grid    `json:"grid"`
	Entrance grid.Position `json:"entrance"`
	Exit     grid.Position `json:"exit"`
	Stats    Stats         `json:"stats"`
}

// Option configures synthesis via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Generate.
type Option func(*Options)

// Options holds the tunable constants and collaborators of the pipeline.
type Options struct {
	// SmoothingThreshold is the fraction of interior cells the scattered
	// wall count must exceed before smoothing runs.
	SmoothingThreshold float64

	// SmoothingIterations is the number of cellular-automaton generations.
	SmoothingIterations int

	// GrowthProbability is the chance an open cell with ≥3 wall neighbors
	// becomes a wall during smoothing.
	GrowthProbability float64

	// GapStoneProbability is the chance a decoration candidate is tried.
	GapStoneProbability float64

	// Repair restores entrance→exit connectivity after each mutating phase.
	Repair connectivity.Repairer

	// Logger receives per-phase debug entries.
	Logger logrus.FieldLogger

	// OnPhase is called after each phase with a read-only view of the grid.
	OnPhase func(p Phase, g *grid.Grid)

	err error
}

// DefaultOptions returns Options with the reference tuning:
//   - smoothing above 30% density, 2 iterations, growth probability 0.3
//   - gap stones with probability 0.15
//   - Staircase repair
//   - a logger that discards everything, no phase hook.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return Options{
		SmoothingThreshold:  DefaultSmoothingThreshold,
		SmoothingIterations: DefaultSmoothingIterations,
		GrowthProbability:   DefaultGrowthProbability,
		GapStoneProbability: DefaultGapStoneProbability,
		Repair:              connectivity.Staircase,
		Logger:              quiet,
		OnPhase:             func(Phase, *grid.Grid) {},
	}
}

func probability(name string, p float64, o *Options) bool {
	if p < 0 || p > 1 {
		o.err = fmt.Errorf("%w: %s must be in [0,1] (%v)", ErrOptionViolation, name, p)
		return false
	}
	return true
}

// WithSmoothingThreshold sets the density above which smoothing runs.
func WithSmoothingThreshold(f float64) Option {
	return func(o *Options) {
		if probability("smoothing threshold", f, o) {
			o.SmoothingThreshold = f
		}
	}
}

// WithSmoothingIterations sets the number of smoothing generations.
// Zero disables smoothing; negative values are a violation.
func WithSmoothingIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: smoothing iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.SmoothingIterations = n
	}
}

// WithGrowthProbability sets the cluster growth probability.
func WithGrowthProbability(p float64) Option {
	return func(o *Options) {
		if probability("growth probability", p, o) {
			o.GrowthProbability = p
		}
	}
}

// WithGapStoneProbability sets the decoration probability.
func WithGapStoneProbability(p float64) Option {
	return func(o *Options) {
		if probability("gap stone probability", p, o) {
			o.GapStoneProbability = p
		}
	}
}

// WithRepairer replaces the connectivity repair strategy.
func WithRepairer(r connectivity.Repairer) Option {
	return func(o *Options) {
		if r != nil {
			o.Repair = r
		}
	}
}

// WithLogger routes phase logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPhase registers a hook run after every phase. In GenerateBatch the
// hook is called from several goroutines and must be safe for that.
func WithOnPhase(fn func(p Phase, g *grid.Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}
