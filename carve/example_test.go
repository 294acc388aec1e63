// File: carve/example_test.go
package carve_test

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/carve"
	"github.com/katalvlaran/hexmaze/hexgrid"
)

// ExampleCarve generates a perfect 3×3 hexagonal maze. Whatever the seed,
// a spanning tree over 9 cells always removes exactly 8 walls.
func ExampleCarve() {
	g, _ := hexgrid.NewGrid(3, 3)

	res, err := carve.Carve(g, carve.WithSeed(42))
	if err != nil {
		fmt.Println("carve failed:", err)
		return
	}

	fmt.Println("walls removed:", res.WallsRemoved)
	fmt.Println("complete:", res.Complete)

	// Output:
	// walls removed: 8
	// complete: true
}
