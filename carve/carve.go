package carve

import (
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/unionfind"
)

// wall is a removal candidate: one internal wall identified by its owning
// cell and the direction toward the neighbor on the other side.
type wall struct {
	row, col int
	dir      hexgrid.Direction
}

// carveDirections is the canonical ownership set: listing only these three
// directions from every cell covers each internal wall exactly once.
var carveDirections = [...]hexgrid.Direction{hexgrid.Down, hexgrid.UpRight, hexgrid.DownRight}

// Carve turns g into a perfect maze in place.
//
// The grid is reset to fully-walled first, so a grid may be re-carved.
// Walls are removed in uniformly shuffled order, gated by union-find so no
// removal ever closes a cycle, and carving stops once rows·cols−1 walls are
// gone. On success the passage graph is a spanning tree: connected, acyclic,
// exactly one path between any two cells. A 1×1 grid needs zero removals.
//
// Returns ErrNilGrid for a nil grid. An under-connected outcome is reported
// through Result.Complete, not as an error; see the package documentation.
func Carve(g *hexgrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	rows, cols := g.Rows(), g.Cols()
	total := rows * cols

	// 1. All walls present, nothing visited.
	g.Reset()

	// 2. Enumerate internal wall candidates once, under canonical ownership.
	walls := make([]wall, 0, 3*total)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, d := range carveDirections {
				if _, _, ok := hexgrid.Neighbor(r, c, d, rows, cols); ok {
					walls = append(walls, wall{row: r, col: c, dir: d})
				}
			}
		}
	}

	// 3. Uniform permutation of the candidate list.
	shuffleWalls(walls, rng)

	// 4. Remove walls between disjoint components until the tree is complete.
	dsu := unionfind.New(total)
	target := total - 1
	removed := 0
	for _, w := range walls {
		if removed == target {
			// Spanning tree complete; remaining candidates can only add cycles.
			break
		}
		nr, nc, ok := hexgrid.Neighbor(w.row, w.col, w.dir, rows, cols)
		if !ok {
			continue
		}
		if dsu.Union(g.Index(w.row, w.col), g.Index(nr, nc)) {
			g.OpenPassage(w.row, w.col, w.dir)
			removed++
		}
	}

	return &Result{
		WallsRemoved: removed,
		Complete:     removed == target,
	}, nil
}
