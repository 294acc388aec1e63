package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexmaze/carve"
	"github.com/katalvlaran/hexmaze/hexgrid"
	"github.com/katalvlaran/hexmaze/render"
	"github.com/katalvlaran/hexmaze/solve"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// TestRasterize_NilGrid rejects a nil grid.
func TestRasterize_NilGrid(t *testing.T) {
	_, err := render.Rasterize(nil)
	assert.ErrorIs(t, err, render.ErrNilGrid)
}

// TestRasterize_SingleCell paints one fully-walled hexagon: black on its
// top edge, white at its center, white background in the margin.
func TestRasterize_SingleCell(t *testing.T) {
	g, err := hexgrid.NewGrid(1, 1)
	require.NoError(t, err)

	img, err := render.Rasterize(g)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())

	// Cell center is at (20,18) with the package geometry; its top wall runs
	// along y=8 from x=14 to x=26.
	assert.Equal(t, black, img.RGBAAt(20, 8), "top wall pixel")
	assert.Equal(t, white, img.RGBAAt(20, 18), "cell interior stays white")
	assert.Equal(t, white, img.RGBAAt(1, 1), "margin stays white")
}

// TestRasterize_SolvedCorridor draws the blue path segment between the two
// cell centers of a solved 1×2 maze.
func TestRasterize_SolvedCorridor(t *testing.T) {
	g, err := hexgrid.NewGrid(1, 2)
	require.NoError(t, err)
	_, err = carve.Carve(g, carve.WithSeed(1))
	require.NoError(t, err)
	res, err := solve.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Solved)

	img, err := render.Rasterize(g)
	require.NoError(t, err)

	// Centers are (20,18) and (38,28); both carry the path overlay, as does
	// the segment midpoint.
	assert.Equal(t, blue, img.RGBAAt(20, 18), "start cell center")
	assert.Equal(t, blue, img.RGBAAt(38, 28), "end cell center")
	assert.Equal(t, blue, img.RGBAAt(29, 23), "segment midpoint")
}

// TestRasterize_NoSolutionNoBlue leaves an unsolved maze free of overlay.
func TestRasterize_NoSolutionNoBlue(t *testing.T) {
	g, err := hexgrid.NewGrid(3, 3)
	require.NoError(t, err)
	_, err = carve.Carve(g, carve.WithSeed(4))
	require.NoError(t, err)

	img, err := render.Rasterize(g)
	require.NoError(t, err)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == blue {
				t.Fatalf("unexpected path pixel at (%d,%d) with no visited cells", x, y)
			}
		}
	}
}
