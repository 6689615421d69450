package connectivity

import (
	"container/list"

	"github.com/katalvlaran/mazeforge/grid"
)

// CarveMinimal makes b reachable from a by opening the fewest walls.
// It returns false without touching g when a and b are already connected.
//
// Behavior:
//  1. 0–1 BFS from a over in-bounds cells:
//     • Moving into an Open cell            → cost 0
//     • Moving into an interior Wall cell   → cost 1
//     • Border walls other than b are never entered, so no extra portals
//     are punched into the ring.
//  2. Stop when b is dequeued.
//  3. Walk predecessors back to a, opening every cell on the path.
//
// If no such path exists (b sealed off by the border alone) it falls back
// to ForceConnect.
//
// Complexity: O(W×H) time and memory.
func CarveMinimal(g *grid.Grid, a, b grid.Position) bool {
	if IsConnected(g, a, b) {
		return false
	}
	if !g.InBounds(a) || !g.InBounds(b) {
		return ForceConnect(g, a, b)
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	idx := func(p grid.Position) int { return p.Y*g.Width + p.X }
	pos := func(i int) grid.Position { return grid.Position{X: i % g.Width, Y: i / g.Width} }

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	src, dst := idx(a), idx(b)
	dist[src] = 0
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		for _, d := range grid.Offsets4 {
			q := pos(u).Add(d)
			if !g.InBounds(q) {
				continue
			}
			cost := 0
			if g.At(q) == grid.Wall {
				if q != b && !g.IsInterior(q) {
					continue
				}
				cost = 1
			}
			v := idx(q)
			if nd := dist[u] + cost; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if cost == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if dist[dst] == inf {
		return ForceConnect(g, a, b)
	}
	g.Set(a, grid.Open)
	for at := dst; at >= 0; at = prev[at] {
		g.Set(pos(at), grid.Open)
	}
	return true
}
