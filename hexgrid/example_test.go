// File: hexgrid/example_test.go
package hexgrid_test

import (
	"fmt"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// ExampleNeighbor demonstrates the column-parity offset arithmetic:
// the same diagonal direction lands on different rows depending on
// whether the starting column is even or odd.
func ExampleNeighbor() {
	const rows, cols = 3, 3

	// From an even column, DownRight stays on the same row.
	r, c, _ := hexgrid.Neighbor(1, 0, hexgrid.DownRight, rows, cols)
	fmt.Printf("even column: (1,0) DownRight -> (%d,%d)\n", r, c)

	// From an odd column, DownRight steps one row down.
	r, c, _ = hexgrid.Neighbor(1, 1, hexgrid.DownRight, rows, cols)
	fmt.Printf("odd column:  (1,1) DownRight -> (%d,%d)\n", r, c)

	// Leaving the grid is reported, not clamped.
	_, _, ok := hexgrid.Neighbor(0, 0, hexgrid.Up, rows, cols)
	fmt.Println("(0,0) Up in bounds:", ok)

	// Output:
	// even column: (1,0) DownRight -> (1,1)
	// odd column:  (1,1) DownRight -> (2,2)
	// (0,0) Up in bounds: false
}

// ExampleGrid_OpenPassage shows the wall symmetry invariant: opening a
// passage clears the wall on both adjacent cells.
func ExampleGrid_OpenPassage() {
	g, _ := hexgrid.NewGrid(2, 1)

	fmt.Println("before:", g.HasWall(0, 0, hexgrid.Down), g.HasWall(1, 0, hexgrid.Up))
	g.OpenPassage(0, 0, hexgrid.Down)
	fmt.Println("after: ", g.HasWall(0, 0, hexgrid.Down), g.HasWall(1, 0, hexgrid.Up))

	// Output:
	// before: true true
	// after:  false false
}
