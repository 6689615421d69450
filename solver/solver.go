// Package solver finds shortest 4-connected paths over a passability map
// with breadth-first search.
package solver

import "github.com/katalvlaran/mazeforge/grid"

// expandOrder lists neighbor offsets in E, S, W, N order. Among equally
// short paths, the first one found follows this preference.
var expandOrder = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state. The parent map doubles as the
// visited set; the start is its own parent.
type walker struct {
	m      Map
	opts   Options
	queue  []queueItem
	parent map[grid.Position]grid.Position
	goal   grid.Position
	res    *Result
}

// Solve runs breadth-first search on m from start to goal over Open cells,
// with neighbors expanded in E, S, W, N order. The first path found is a
// shortest one by step count. Paths are rebuilt from parent links, so memory
// is O(cells) rather than one prefix per queued state.
//
// An unreachable goal, a closed start or goal, or a MaxDepth cut-off all
// produce Result{Found: false} with a nil error. Errors are reserved for
// ErrNilMap, ErrOutOfBounds and ErrOptionViolation.
func Solve(m Map, start, goal grid.Position, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.InBounds(start) || !m.InBounds(goal) {
		return nil, ErrOutOfBounds
	}

	w := &walker{
		m:      m,
		opts:   o,
		parent: make(map[grid.Position]grid.Position),
		goal:   goal,
		res:    &Result{},
	}
	if !m.IsOpen(start) || !m.IsOpen(goal) {
		return w.res, nil
	}
	w.enqueue(start, 0, start)
	w.loop()
	return w.res, nil
}

// enqueue records p's parent and appends it to the queue.
func (w *walker) enqueue(p grid.Position, depth int, from grid.Position) {
	w.parent[p] = from
	w.queue = append(w.queue, queueItem{pos: p, depth: depth})
}

// loop processes the FIFO queue until the goal is dequeued or the frontier
// is exhausted.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Visited++
		w.opts.OnVisit(item.pos, item.depth)

		if item.pos == w.goal {
			w.res.Found = true
			w.res.Path = w.pathTo(item.pos)
			return
		}
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, d := range expandOrder {
			q := item.pos.Add(d)
			if !w.m.IsOpen(q) {
				continue
			}
			if _, seen := w.parent[q]; !seen {
				w.enqueue(q, next, item.pos)
			}
		}
	}
}

// pathTo walks parent links back to the start (its own parent) and returns
// the path start → dest.
func (w *walker) pathTo(dest grid.Position) []grid.Position {
	path := []grid.Position{dest}
	for cur := dest; w.parent[cur] != cur; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
