// Package carve generates perfect hexagonal mazes by randomized
// Kruskal-style wall removal over a hexgrid.Grid.
//
// What
//
//   - Start from a fully-walled grid, enumerate every internal wall exactly
//     once, shuffle the list uniformly, and remove a wall whenever its two
//     cells lie in different union-find components.
//   - Stop as soon as rows·cols−1 walls are gone: a spanning tree over
//     rows·cols cells has exactly that many edges, so any remaining
//     candidates can only form cycles.
//
// Why
//
//	The resulting passage graph is connected and acyclic — a "perfect" maze
//	with exactly one path between any two cells. That uniqueness is what the
//	solver and the renderers rely on downstream.
//
// Canonical wall ownership
//
//	Each physical wall separates two cells, so enumerating all six directions
//	from every cell would list every wall twice and corrupt the removal count.
//	Carve lists only Down, UpRight, and DownRight from each cell (skipping
//	out-of-bounds neighbors); those three directions cover every internal
//	wall exactly once.
//
// Determinism
//
//	Randomness comes solely from the configured source: WithSeed(s) (s==0
//	selects a fixed default seed) or WithRand for a caller-owned stream.
//	Same seed and dimensions ⇒ byte-identical grids. No time-based seeding
//	happens inside the library.
//
// Errors
//
//   - ErrNilGrid if the grid pointer is nil.
//   - An under-connected outcome (fewer than rows·cols−1 removable walls) is
//     not an error: Result.Complete reports it, and solving such a grid
//     legitimately yields "no path". The hex adjacency graph is connected for
//     all valid dimensions, so this is a guard, not an expected path.
//
// Complexity: O(rows·cols·α) time after an O(rows·cols) shuffle;
// memory O(rows·cols) for the candidate list and union-find state.
package carve
