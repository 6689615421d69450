// Package mazeforge synthesizes solvable grid mazes, renders them, reads
// maze images back into coarse grids and solves them with breadth-first
// search.
//
// What is inside?
//
//	grid/         : Grid, Cell and Position: dimensions, border ring, portals, ASCII/JSON
//	connectivity/ : flood fill, staircase and minimal-carve repair, union-find regions
//	synth/        : the nine-phase generation pipeline, seeded and batch generation
//	classify/     : image → N×N passable/blocked grid (green or Lab heuristics)
//	solver/       : BFS shortest path with parent links and visit hooks
//	render/       : rasterization, solution overlays, arrow markers, PNG I/O
//	store/        : badger-backed maze repository
//	metrics/      : prometheus collectors
//	server/       : gin HTTP API
//	config/       : YAML + .env + MAZEFORGE_* settings
//	logging/      : logrus setup
//	cmd/mazeforge : cobra CLI: generate, solve, batch, serve
//
// Guarantees:
//
//   - Every maze returned by synth connects its entrance to its exit under
//     4-connectivity; the check runs before Generate returns.
//   - FromSeed(seed, req) is reproducible, ID included.
//   - Solve returns a shortest path or Found=false; an unreachable goal is
//     not an error.
//
// Quick start:
//
//	m, _ := synth.FromSeed(42, synth.Request{WidthPx: 1000, HeightPx: 1000, CellSize: 40, Walls: 150})
//	img, _ := render.Rasterize(m.Grid, m.CellSize)
//	_ = render.SavePNG("maze.png", img)
//	res, _ := solver.Solve(m.Grid, m.Entrance, m.Exit)
//	fmt.Println(res.Steps())
package mazeforge
