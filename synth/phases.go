package synth

import (
	"github.com/katalvlaran/mazeforge/connectivity"
	"github.com/katalvlaran/mazeforge/grid"
)

// scatter walls min(walls, interior) distinct interior cells drawn uniformly
// without replacement. The result is the wall budget later phases restore.
func (b *builder) scatter(walls int) {
	cells := b.g.Interior(grid.Open)
	b.target = min(walls, b.g.InteriorCount())
	b.stats.TargetWalls = b.target

	b.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	for _, p := range cells[:min(b.target, len(cells))] {
		b.g.Set(p, grid.Wall)
	}
}

// smooth applies the cellular-automaton rule when the wall budget exceeds
// SmoothingThreshold of the interior. Each generation reads the previous
// buffer and writes a fresh one:
//   - a wall with no wall neighbors opens,
//   - an open cell with ≥3 wall neighbors walls up with GrowthProbability.
//
// Cells within two of the edge are left alone so neighbor reads stay inside
// the ring. Reports whether smoothing ran.
func (b *builder) smooth() bool {
	if float64(b.target) <= float64(b.stats.Interior)*b.opts.SmoothingThreshold {
		return false
	}
	if b.opts.SmoothingIterations == 0 {
		return false
	}
	b.stats.Smoothed = true

	next := b.g.Clone()
	for it := 0; it < b.opts.SmoothingIterations; it++ {
		for y := 2; y < b.g.Height-2; y++ {
			for x := 2; x < b.g.Width-2; x++ {
				p := grid.Position{X: x, Y: y}
				n := b.g.WallNeighbors(p)
				switch b.g.At(p) {
				case grid.Wall:
					if n < 1 {
						next.Set(p, grid.Open)
					}
				case grid.Open:
					if n >= 3 && b.rng.Float64() < b.opts.GrowthProbability {
						next.Set(p, grid.Wall)
					}
				}
			}
		}
		b.g.CopyFrom(next)
	}
	return true
}

// correct brings the interior wall count back to the target by walling
// shuffled open cells or opening shuffled walls. It may change
// connectivity either way.
func (b *builder) correct() {
	diff := b.target - b.g.InteriorWalls()
	var (
		from, to grid.Cell
		n        int
	)
	switch {
	case diff > 0:
		from, to, n = grid.Open, grid.Wall, diff
	case diff < 0:
		from, to, n = grid.Wall, grid.Open, -diff
	default:
		return
	}
	cells := b.g.Interior(from)
	b.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	for _, p := range cells[:min(n, len(cells))] {
		b.g.Set(p, to)
	}
}

// decorate drops "gap stones": each open interior cell with ≥2 wall
// neighbors is walled with GapStoneProbability, and the flip is reverted at
// once if the exit stops being reachable from the entrance.
func (b *builder) decorate() {
	for y := 1; y < b.g.Height-1; y++ {
		for x := 1; x < b.g.Width-1; x++ {
			p := grid.Position{X: x, Y: y}
			if b.g.At(p) != grid.Open || b.g.WallNeighbors(p) < 2 {
				continue
			}
			if b.rng.Float64() >= b.opts.GapStoneProbability {
				continue
			}
			b.g.Set(p, grid.Wall)
			if connectivity.IsConnected(b.g, b.entrance, b.exit) {
				b.stats.GapStonesKept++
				continue
			}
			b.g.Set(p, grid.Open)
			b.stats.GapStonesReverted++
		}
	}
}
