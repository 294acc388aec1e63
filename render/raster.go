package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Raster geometry, in pixels. Same hex proportions as the PostScript back
// end, scaled up; y grows downward.
const (
	imgE      = 12 // horizontal distance from a cell center to a vertical edge
	imgV      = 10 // vertical distance from a cell center to a horizontal edge
	imgMargin = 8
)

var (
	wallColor = color.RGBA{A: 255}
	pathColor = color.RGBA{B: 255, A: 255}
)

// imgX returns the pixel x of the center of column c.
func imgX(c int) int {
	return imgMargin + imgE + (3*imgE*c)/2
}

// imgY returns the pixel y of the center of cell (r, c); odd columns sit
// half a cell lower.
func imgY(r, c int) int {
	return imgMargin + imgV + 2*imgV*r + (c&1)*imgV
}

// Rasterize paints g onto a white RGBA canvas: black walls and, when any
// cell is marked visited, the solution path in blue between cell centers.
// Returns ErrNilGrid for a nil grid.
func Rasterize(g *hexgrid.Grid) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	rows, cols := g.Rows(), g.Cols()

	width := imgX(cols-1) + imgE + imgMargin
	bottom := imgY(rows-1, 0)
	if cols > 1 {
		// Odd columns reach half a cell lower.
		bottom = imgY(rows-1, 1)
	}
	height := bottom + imgV + imgMargin

	img := image.NewRGBA(image.Rect(0, 0, width+1, height+1))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Walls: all six sides of every cell. Shared walls are painted twice,
	// which is harmless for pixels.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := imgX(c), imgY(r, c)
			if g.HasWall(r, c, hexgrid.Up) {
				drawLine(img, x-imgE/2, y-imgV, x+imgE/2, y-imgV, wallColor)
			}
			if g.HasWall(r, c, hexgrid.UpRight) {
				drawLine(img, x+imgE/2, y-imgV, x+imgE, y, wallColor)
			}
			if g.HasWall(r, c, hexgrid.DownRight) {
				drawLine(img, x+imgE, y, x+imgE/2, y+imgV, wallColor)
			}
			if g.HasWall(r, c, hexgrid.Down) {
				drawLine(img, x+imgE/2, y+imgV, x-imgE/2, y+imgV, wallColor)
			}
			if g.HasWall(r, c, hexgrid.DownLeft) {
				drawLine(img, x-imgE/2, y+imgV, x-imgE, y, wallColor)
			}
			if g.HasWall(r, c, hexgrid.UpLeft) {
				drawLine(img, x-imgE, y, x-imgE/2, y-imgV, wallColor)
			}
		}
	}

	// Solution overlay between visited neighbors, each segment drawn once.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.Visited(r, c) {
				continue
			}
			for _, d := range hexgrid.Directions {
				if g.HasWall(r, c, d) {
					continue
				}
				nr, nc, ok := g.Neighbor(r, c, d)
				if !ok || !g.Visited(nr, nc) || g.Index(nr, nc) <= g.Index(r, c) {
					continue
				}
				drawLine(img, imgX(c), imgY(r, c), imgX(nc), imgY(nr, nc), pathColor)
			}
		}
	}

	return img, nil
}

// drawLine plots an anti-aliasing-free segment, endpoints inclusive.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	if steps == 0 {
		img.SetRGBA(x1, y1, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(math.Round(t*float64(dx)))
		y := y1 + int(math.Round(t*float64(dy)))
		img.SetRGBA(x, y, col)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
