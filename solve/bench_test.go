package solve_test

import (
	"testing"

	"github.com/katalvlaran/hexmaze/carve"
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/solve"
)

// BenchmarkSolve measures BFS plus trace on a carved 50×50 maze.
// Complexity: O(rows·cols).
func BenchmarkSolve(b *testing.B) {
	g, err := hexgrid.NewGrid(hexgrid.MaxRows, hexgrid.MaxCols)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	if _, err = carve.Carve(g, carve.WithSeed(42)); err != nil {
		b.Fatalf("setup Carve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = solve.Solve(g); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
