// Command hexmaze generates a random hexagonal maze, solves it, and writes
// the result as a two-page PostScript document and, optionally, a PNG image.
//
// The core packages assume validated dimensions and a caller-chosen random
// source; both responsibilities live here.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/hexmaze/carve"
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/render"
	"github.com/katalvlaran/hexmaze/solve"
)

func run() int {
	var rows, cols int
	var seed int64
	var outFile, imageFile string
	flag.IntVar(&rows, "rows", 20, "Number of maze rows.")
	flag.IntVar(&cols, "cols", 20, "Number of maze columns.")
	flag.Int64Var(&seed, "seed", 0,
		"Random seed. 0 seeds from the current time.")
	flag.StringVar(&outFile, "out", "maze.ps",
		"The name of the PostScript file to write.")
	flag.StringVar(&imageFile, "image", "",
		"Optional name of a .png file to also write the maze to.")
	flag.Parse()

	if rows < 1 || rows > hexgrid.MaxRows || cols < 1 || cols > hexgrid.MaxCols {
		fmt.Fprintf(os.Stderr, "Rows must be between 1 and %d, columns between 1 and %d.\n",
			hexgrid.MaxRows, hexgrid.MaxCols)
		return 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := hexgrid.NewGrid(rows, cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating grid: %s\n", err)
		return 1
	}

	fmt.Printf("Generating %dx%d maze...\n", rows, cols)
	res, err := carve.Carve(g, carve.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating maze: %s\n", err)
		return 1
	}
	if !res.Complete {
		fmt.Fprintln(os.Stderr,
			"Warning: could not remove the target number of walls; maze may not be fully connected.")
	}
	fmt.Println("Maze generation complete.")

	fmt.Println("Solving maze using BFS...")
	sol, err := solve.Solve(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving maze: %s\n", err)
		return 1
	}
	if sol.Solved {
		fmt.Printf("Shortest path crosses %d cells.\n", len(sol.Path))
	} else {
		fmt.Println("No solution path found from start to end.")
	}

	f, err := os.Create(outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %s\n", outFile, err)
		return 1
	}
	err = render.WritePostScript(f, g)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", outFile, err)
		return 1
	}
	fmt.Printf("Maze written to %s\n", outFile)

	if imageFile != "" {
		if err = writeImage(imageFile, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", imageFile, err)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", imageFile)
	}

	return 0
}

// writeImage rasterizes g and saves it as a bordered PNG.
func writeImage(name string, g *hexgrid.Grid) error {
	pic, err := render.Rasterize(g)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, image_utils.AddImageBorder(pic, color.White, 5))
}

func main() {
	os.Exit(run())
}
