// Package synth produces grid mazes whose exit is always reachable from
// their entrance.
//
// What
//
//   - Generate runs a linear pipeline over a fresh grid.Grid:
//     1. border    – wall the outer ring
//     2. portals   – entrance on the left border, exit on right/top/bottom
//     3. scatter   – wall min(Walls, interior) random interior cells
//     4. repair #1
//     5. smoothing – only above SmoothingThreshold density: isolated walls
//     open, open cells with ≥3 wall neighbors may grow into walls
//     6. repair #2
//     7. correction – restore the scattered wall budget with random flips
//     8. repair #3
//     9. decoration – tentative "gap stones", reverted when they disconnect
//   - FromSeed wraps Generate with a seeded rand.Rand.
//   - GenerateBatch builds many mazes in parallel with independent streams.
//
// Determinism
//
//	All randomness comes from the *rand.Rand passed in, so the same seed and
//	request always produce the same grid, portals and maze ID.
//
// Options
//
//   - WithSmoothingThreshold(f), WithSmoothingIterations(n),
//     WithGrowthProbability(p), WithGapStoneProbability(p)
//   - WithRepairer(connectivity.MinimalCarve) for least-intrusive repair
//   - WithLogger(l) for per-phase debug logging
//   - WithOnPhase(fn) to observe the grid after each phase
//
// Errors
//
//   - ErrNilRand, ErrInvalidRequest, ErrOptionViolation
//   - ErrDisconnected if a custom Repairer fails to connect the portals
//
// Complexity
//
//	Scatter, smoothing and correction are O(W×H). Decoration runs a flood fill
//	per tried candidate, O(k·W×H) for k candidates; k is a small fraction of
//	the interior at the default probability.
package synth
