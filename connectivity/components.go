package connectivity

import (
	"github.com/spakin/disjoint"

	"github.com/katalvlaran/mazeforge/grid"
)

// Components partitions the Open cells of g into 4-connected regions.
// Regions are ordered by their first cell in row-major order, and the cells
// within each region are row-major too, so the output is deterministic.
//
// Time:   O(W·H·α(W·H)) using union-find.
// Memory: O(W·H).
func Components(g *grid.Grid) [][]grid.Position {
	elems := make([]*disjoint.Element, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if !g.IsOpen(p) {
				continue
			}
			i := y*g.Width + x
			elems[i] = disjoint.NewElement()
			// Only look left and up; the right and down links are made when
			// those cells are reached.
			if x > 0 && elems[i-1] != nil {
				disjoint.Union(elems[i], elems[i-1])
			}
			if y > 0 && elems[i-g.Width] != nil {
				disjoint.Union(elems[i], elems[i-g.Width])
			}
		}
	}

	slot := make(map[*disjoint.Element]int)
	var comps [][]grid.Position
	for i, e := range elems {
		if e == nil {
			continue
		}
		root := e.Find()
		k, ok := slot[root]
		if !ok {
			k = len(comps)
			slot[root] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], grid.Position{X: i % g.Width, Y: i / g.Width})
	}
	return comps
}
