package config

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeforge/classify"
	"github.com/katalvlaran/mazeforge/connectivity"
	"github.com/katalvlaran/mazeforge/render"
	"github.com/katalvlaran/mazeforge/synth"
)

// Request returns the configured maze request.
func (g Generator) Request() synth.Request {
	return synth.Request{WidthPx: g.WidthPx, HeightPx: g.HeightPx, CellSize: g.CellSize, Walls: g.Walls}
}

// Options translates the tuning section into synth options.
func (g Generator) Options(log logrus.FieldLogger) []synth.Option {
	repair := connectivity.Staircase
	if g.Repair == "minimal" {
		repair = connectivity.MinimalCarve
	}
	opts := []synth.Option{
		synth.WithSmoothingThreshold(g.SmoothingThreshold),
		synth.WithSmoothingIterations(g.SmoothingIterations),
		synth.WithGrowthProbability(g.GrowthProbability),
		synth.WithGapStoneProbability(g.GapStoneProbability),
		synth.WithRepairer(repair),
	}
	if log != nil {
		opts = append(opts, synth.WithLogger(log))
	}
	return opts
}

// Options translates the solver section into classifier options.
func (s Solver) Options() []classify.Option {
	var strategy classify.Strategy = classify.DefaultGreenObstacle()
	if s.Strategy == "lab" {
		strategy = classify.DefaultLabObstacle()
	}
	return []classify.Option{
		classify.WithGridSize(s.GridSize),
		classify.WithPortalRow(s.PortalRow),
		classify.WithStrategy(strategy),
	}
}

// Options translates the render section into raster options. Noise needs a
// random source; with a nil rng it is skipped.
func (r Render) Options(rng *rand.Rand) []render.Option {
	opts := []render.Option{
		render.WithMaxSide(r.MaxSide),
		render.WithOutlineWidth(r.OutlineWidth),
	}
	if r.Noise > 0 && rng != nil {
		opts = append(opts, render.WithNoise(rng, r.Noise))
	}
	return opts
}
