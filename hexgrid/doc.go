// Package hexgrid provides the shared data model for hexagonal mazes:
// a rectangular Grid of Cells addressed in column-parity offset coordinates,
// plus the pure neighbor arithmetic every algorithm in hexmaze depends on.
//
// What
//
//   - Direction: one bit flag per hex side (Up, UpRight, DownRight, Down,
//     DownLeft, UpLeft), with Opposite() pairing the two sides of a shared wall.
//   - Neighbor: maps (row, col, direction) to the adjacent coordinate, or
//     reports out-of-bounds. Diagonal row offsets depend on column parity.
//   - Grid: rows×cols cells, each holding six wall flags and one visited flag.
//     Dimensions are validated once at construction; storage is a single
//     row-major buffer indexed by row*cols+col.
//
// Why
//
//   - The offset geometry is the most failure-prone arithmetic in the system,
//     so it lives in one place with exhaustive per-direction, per-parity tests.
//   - Callers never reason about raw bit masks: walls and the visited flag are
//     exposed only through named queries, and OpenPassage keeps both sides of
//     a shared wall consistent (the symmetry invariant).
//
// Geometry
//
//	Columns are vertical runs of hexagons; odd columns sit half a cell lower
//	than even columns. Moving Up or Down changes only the row. The four
//	diagonal directions change the column by ±1 and the row by
//	-1+(col&1) toward the upper row, or (col&1) toward the lower row.
//
// Invariants
//
//   - Interior symmetry: a cleared wall on one cell implies a cleared wall in
//     the opposite direction on its neighbor, and vice versa.
//   - Boundary edges (no neighbor) are always walled and never clearable.
//
// Complexity: all operations are O(1); ClearVisited is O(rows·cols).
package hexgrid
