// Package solve finds the shortest path through a carved hexagonal maze
// with breadth-first search and a greedy forward trace.
//
// What
//
//   - BFS is seeded at the end cell with distance 0 and expands over open
//     passages only, so each cell's first-assigned distance is its true
//     shortest hop-count from the end.
//   - If the start cell is never reached, the result is a clean "no path":
//     Result.Solved == false, no visited flags set, nil error. A disconnected
//     maze is a legitimate input, not a failure.
//   - Otherwise the path is traced forward from the start: every step moves
//     to an open-passage neighbor whose distance is exactly one less, marking
//     each cell visited, until distance 0 at the end cell.
//
// Why the forward trace cannot fail
//
//	BFS distances over open passages decrease by exactly one along any
//	shortest route toward the end, so a qualifying neighbor always exists
//	while the start is reachable. A trace that gets stuck anyway means the
//	distance table contradicts the wall state — grid corruption — and is
//	surfaced as ErrTraceInconsistent, deliberately distinct from "no path".
//
// Visited marks
//
//	After a solved run, exactly the cells on the start→end path are marked
//	visited. Because a perfect maze is a tree, a renderer may reconstruct the
//	drawn route purely from "visited cell joined to visited cell by an open
//	passage"; the solver preserves that invariant rather than exporting BFS
//	order.
//
// Errors
//
//   - ErrNilGrid            — nil grid pointer.
//   - ErrOptionViolation    — start or end outside the grid.
//   - ErrTraceInconsistent  — distance table contradicts wall state (fatal).
//
// Complexity: O(rows·cols) time and memory.
package solve
