// Package synth builds solvable grid mazes with a fixed, linear pipeline:
// border, portals, random scatter, cellular-automaton smoothing, wall
// budget correction and gap-stone decoration. Every phase that can cut the
// entrance off from the exit is followed by a repair or a verification.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazeforge/connectivity"
	"github.com/katalvlaran/mazeforge/grid"
)

// builder encapsulates mutable synthesis state.
type builder struct {
	rng      *rand.Rand
	opts     Options
	log      logrus.FieldLogger
	g        *grid.Grid
	entrance grid.Position
	exit     grid.Position
	target   int
	stats    Stats
}

// FromSeed runs Generate with a fresh rand.Rand seeded by seed and records
// the seed on the result, so FromSeed(s, r) is reproducible.
func FromSeed(seed int64, req Request, opts ...Option) (*Maze, error) {
	m, err := Generate(rand.New(rand.NewSource(seed)), req, opts...)
	if err != nil {
		return nil, err
	}
	m.Seed = seed
	return m, nil
}

// Generate runs the synthesis pipeline for req, drawing every random choice
// from rng. The returned maze always connects Entrance to Exit under
// 4-connectivity. The maze ID is drawn from rng too, after the grid is done.
//
// Returns ErrNilRand, ErrInvalidRequest, ErrOptionViolation, or
// ErrDisconnected if a custom Repairer broke its contract.
func Generate(rng *rand.Rand, req Request, opts ...Option) (*Maze, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := grid.New(req.WidthPx, req.HeightPx, req.CellSize)
	b := &builder{
		rng:  rng,
		opts: o,
		log:  o.Logger.WithFields(logrus.Fields{"width": g.Width, "height": g.Height}),
		g:    g,
		stats: Stats{
			Width:      g.Width,
			Height:     g.Height,
			Interior:   g.InteriorCount(),
			WallsAfter: make(map[string]int, len(phaseNames)),
		},
	}
	if err := b.run(req.Walls); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("synth: maze id: %w", err)
	}
	cell := req.CellSize
	if cell < 1 {
		cell = 1
	}
	return &Maze{
		ID:       id,
		Request:  req,
		CellSize: cell,
		Grid:     g,
		Entrance: b.entrance,
		Exit:     b.exit,
		Stats:    b.stats,
	}, nil
}

// run executes the phases in order.
func (b *builder) run(walls int) error {
	b.g.SetBorderWalls()
	b.done(PhaseBorder)

	var err error
	b.entrance, b.exit, err = b.g.ChooseEntranceAndExit(b.rng)
	if err != nil {
		return err
	}
	b.done(PhasePortals)

	b.scatter(walls)
	b.done(PhaseScatter)
	b.repair(PhaseRepairScatter)

	if b.smooth() {
		b.done(PhaseSmoothing)
	}
	b.repair(PhaseRepairSmoothing)

	b.correct()
	b.done(PhaseCorrection)
	b.repair(PhaseRepairCorrection)

	b.decorate()
	b.done(PhaseDecoration)

	if !connectivity.IsConnected(b.g, b.entrance, b.exit) {
		return fmt.Errorf("%w: %v → %v", ErrDisconnected, b.entrance, b.exit)
	}
	b.stats.FinalWalls = b.g.InteriorWalls()
	b.stats.Regions = len(connectivity.Components(b.g))
	return nil
}

// done records the wall count after p, logs it and fires the hook.
func (b *builder) done(p Phase) {
	walls := b.g.InteriorWalls()
	b.stats.WallsAfter[p.String()] = walls
	b.log.WithFields(logrus.Fields{"phase": p.String(), "walls": walls}).Debug("synth: phase complete")
	b.opts.OnPhase(p, b.g)
}

// repair runs the configured Repairer between entrance and exit.
func (b *builder) repair(p Phase) {
	if b.opts.Repair(b.g, b.entrance, b.exit) {
		b.stats.Repairs = append(b.stats.Repairs, p.String())
		b.log.WithField("phase", p.String()).Debug("synth: connectivity repaired")
	}
	b.done(p)
}
