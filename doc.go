// Package hexmaze is an in-memory toolkit for generating, solving, and
// rendering perfect mazes on hexagonal-offset grids.
//
// 🚀 What is hexmaze?
//
//	A small, deterministic library built from four cooperating pieces:
//		• hexgrid   — the shared grid model: per-cell wall/visited flags and
//		              the column-parity neighbor arithmetic everything uses
//		• unionfind — disjoint sets over cell indices, the cycle detector
//		              behind generation
//		• carve     — randomized Kruskal-style wall removal producing a
//		              spanning tree of passages (a "perfect" maze)
//		• solve     — BFS shortest-path distances from the exit plus a greedy
//		              forward trace that marks the solution path
//	plus render, a read-only layer emitting PostScript documents or raster
//	images, and cmd/hexmaze, a command-line front end.
//
// ✨ Why choose hexmaze?
//
//   - Reproducible – same seed and dimensions ⇒ bit-identical mazes and paths
//   - Honest errors – sentinel errors per package, "no path" is a result,
//     never a panic
//   - Pure Go core – the only runtime dependency is the image helper used by
//     the CLI
//   - Single-threaded by design – one grid, one owner, no hidden state
//
// Typical use:
//
//	g, _ := hexgrid.NewGrid(20, 20)
//	_, _ = carve.Carve(g, carve.WithSeed(42))
//	sol, _ := solve.Solve(g)
//	_ = render.WritePostScript(w, g)
//
// A carved grid satisfies the perfect-maze postcondition — connected and
// acyclic, exactly one path between any two cells — and the solver preserves
// it: after a solved run, exactly the cells on the unique start→end path are
// marked visited, which is all a renderer needs to draw the route.
//
// See each package's documentation for the full contract.
package hexmaze
