package connectivity

import "github.com/katalvlaran/mazeforge/grid"

// ForceConnect makes b reachable from a. When the two are already connected
// it does nothing and returns false. Otherwise it carves a Manhattan
// staircase: it opens a, walks along x until it reaches b.X, then along y
// until it reaches b.Y, opening every cell on the way, and returns true.
// The walk takes at most W+H steps.
//
// The carving is not shortest or least-intrusive; see CarveMinimal for that.
func ForceConnect(g *grid.Grid, a, b grid.Position) bool {
	if IsConnected(g, a, b) {
		return false
	}
	cur := a
	g.Set(cur, grid.Open)
	for cur.X != b.X {
		cur.X += step(cur.X, b.X)
		g.Set(cur, grid.Open)
	}
	for cur.Y != b.Y {
		cur.Y += step(cur.Y, b.Y)
		g.Set(cur, grid.Open)
	}
	return true
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
