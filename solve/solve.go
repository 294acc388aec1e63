package solve

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Solve computes the shortest path through g between the configured start
// and end cells (corner to corner by default) and marks the path cells
// visited. Wall flags are never mutated.
//
// A grid with no route between the endpoints yields Result.Solved == false
// with every visited flag clear — a normal outcome, not an error. On a 1×1
// grid start and end coincide and the single cell is trivially solved.
//
// Returns ErrNilGrid, ErrOptionViolation for endpoints outside the grid, or
// ErrTraceInconsistent if the distance table contradicts the wall state.
func Solve(g *hexgrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rows, cols := g.Rows(), g.Cols()
	if !o.startSet {
		o.Start = hexgrid.Coord{Row: 0, Col: 0}
	}
	if !o.endSet {
		o.End = hexgrid.Coord{Row: rows - 1, Col: cols - 1}
	}
	if !g.InBounds(o.Start.Row, o.Start.Col) {
		return nil, fmt.Errorf("%w: start (%d,%d) outside %dx%d grid",
			ErrOptionViolation, o.Start.Row, o.Start.Col, rows, cols)
	}
	if !g.InBounds(o.End.Row, o.End.Col) {
		return nil, fmt.Errorf("%w: end (%d,%d) outside %dx%d grid",
			ErrOptionViolation, o.End.Row, o.End.Col, rows, cols)
	}

	// 1. Fresh solver state: no visited marks, all distances unreached.
	g.ClearVisited()
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = Unreached
	}

	// 2. BFS from the end cell; the FIFO queue guarantees first-assigned
	//    distances are shortest hop-counts.
	endIdx := g.Index(o.End.Row, o.End.Col)
	dist[endIdx] = 0
	queue := make([]int, 0, rows*cols)
	queue = append(queue, endIdx)
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		r, c := g.Coordinate(cur)
		for _, d := range hexgrid.Directions {
			if g.HasWall(r, c, d) {
				continue
			}
			nr, nc, ok := g.Neighbor(r, c, d)
			if !ok {
				continue
			}
			ni := g.Index(nr, nc)
			if dist[ni] == Unreached {
				dist[ni] = dist[cur] + 1
				queue = append(queue, ni)
			}
		}
	}

	// 3. Unreached start: report "no path", leave every visited flag clear.
	startIdx := g.Index(o.Start.Row, o.Start.Col)
	if dist[startIdx] == Unreached {
		return &Result{Solved: false, Dist: dist}, nil
	}

	// 4. Greedy forward trace: distances strictly decrease by one per step
	//    toward the end, so a qualifying neighbor must exist at every cell.
	path := make([]hexgrid.Coord, 0, dist[startIdx]+1)
	r, c := o.Start.Row, o.Start.Col
	g.SetVisited(r, c, true)
	path = append(path, hexgrid.Coord{Row: r, Col: c})
	for dist[g.Index(r, c)] != 0 {
		found := false
		for _, d := range hexgrid.Directions {
			if g.HasWall(r, c, d) {
				continue
			}
			nr, nc, ok := g.Neighbor(r, c, d)
			if !ok {
				continue
			}
			if dist[g.Index(nr, nc)] == dist[g.Index(r, c)]-1 {
				r, c = nr, nc
				g.SetVisited(r, c, true)
				path = append(path, hexgrid.Coord{Row: r, Col: c})
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: stuck at (%d,%d) with distance %d",
				ErrTraceInconsistent, r, c, dist[g.Index(r, c)])
		}
	}

	return &Result{Solved: true, Path: path, Dist: dist}, nil
}
