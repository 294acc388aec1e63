package hexgrid

// Grid is a rows×cols array of Cells stored in one row-major buffer.
// A fresh Grid has every wall present and no cell visited.
//
// Mutation is split by role: the generator clears wall flags through
// OpenPassage, the solver toggles visited flags, and renderers read only.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a fully-walled grid. Returns ErrBadDimensions when
// rows or cols fall outside [1, MaxRows]×[1, MaxCols].
// Complexity: O(rows·cols).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.Reset()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r, c) to its row-major index r*cols+c.
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r, c).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// Cell returns a copy of the cell at (r, c).
func (g *Grid) Cell(r, c int) Cell {
	return g.cells[g.Index(r, c)]
}

// HasWall reports whether the cell at (r, c) has its wall on side d.
func (g *Grid) HasWall(r, c int, d Direction) bool {
	return g.cells[g.Index(r, c)].HasWall(d)
}

// Neighbor resolves the neighbor of (r, c) in direction d within this grid.
func (g *Grid) Neighbor(r, c int, d Direction) (nr, nc int, ok bool) {
	return Neighbor(r, c, d, g.rows, g.cols)
}

// OpenPassage clears the wall between (r, c) and its neighbor in direction d,
// on both sides, preserving the symmetry invariant. It reports whether a
// passage was opened: boundary edges have no neighbor and stay walled.
func (g *Grid) OpenPassage(r, c int, d Direction) bool {
	nr, nc, ok := Neighbor(r, c, d, g.rows, g.cols)
	if !ok {
		return false
	}
	g.cells[g.Index(r, c)] &^= Cell(d)
	g.cells[g.Index(nr, nc)] &^= Cell(d.Opposite())

	return true
}

// Visited reports whether the cell at (r, c) is marked visited.
func (g *Grid) Visited(r, c int) bool {
	return g.cells[g.Index(r, c)].Visited()
}

// SetVisited sets or clears the visited mark on the cell at (r, c).
// Wall bits are untouched.
func (g *Grid) SetVisited(r, c int, v bool) {
	i := g.Index(r, c)
	if v {
		g.cells[i] = Cell(uint8(g.cells[i]) | visitedBit)
	} else {
		g.cells[i] = Cell(uint8(g.cells[i]) &^ visitedBit)
	}
}

// ClearVisited clears the visited mark on every cell.
// Complexity: O(rows·cols).
func (g *Grid) ClearVisited() {
	for i := range g.cells {
		g.cells[i] = Cell(uint8(g.cells[i]) &^ visitedBit)
	}
}

// Reset restores every wall and clears every visited mark, returning the grid
// to its freshly-constructed state.
// Complexity: O(rows·cols).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell(allWalls)
	}
}

// Equal reports whether two grids have identical dimensions and identical
// per-cell wall and visited state.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}
