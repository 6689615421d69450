package connectivity

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazeforge/grid"
)

// fill runs an explicit-stack flood fill from start over Open cells under
// 4-connectivity, calling visit once per reached cell. Traversal stops early
// when visit returns false. Each cell is visited at most once, so fill is
// O(W×H) time and memory regardless of grid shape.
func fill(g *grid.Grid, start grid.Position, visit func(p grid.Position) bool) {
	if !g.IsOpen(start) {
		return
	}
	seen := make([]bool, g.Width*g.Height)
	stack := []grid.Position{start}
	seen[start.Y*g.Width+start.X] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(p) {
			return
		}
		for _, d := range grid.Offsets4 {
			q := p.Add(d)
			if !g.IsOpen(q) {
				continue
			}
			i := q.Y*g.Width + q.X
			if !seen[i] {
				seen[i] = true
				stack = append(stack, q)
			}
		}
	}
}

// ReachableSet returns every Open cell reachable from start under
// 4-connectivity, start included. The result is empty when start is out of
// bounds or a Wall. For a fixed grid the result does not depend on
// traversal order.
// Complexity: O(W×H).
func ReachableSet(g *grid.Grid, start grid.Position) mapset.Set[grid.Position] {
	reached := mapset.New[grid.Position]()
	fill(g, start, func(p grid.Position) bool {
		reached.Put(p)
		return true
	})
	return reached
}

// IsConnected reports whether b is reachable from a. The search stops as
// soon as b is found.
// Complexity: O(W×H) worst case.
func IsConnected(g *grid.Grid, a, b grid.Position) bool {
	found := false
	fill(g, a, func(p grid.Position) bool {
		if p == b {
			found = true
		}
		return !found
	})
	return found
}
