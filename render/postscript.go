package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrNilWriter is returned if WritePostScript is given a nil writer.
	ErrNilWriter = errors.New("render: writer is nil")
)

// PostScript geometry, in points.
const (
	psE     = 6   // horizontal distance from a cell center to a vertical edge
	psV     = 5   // vertical distance from a cell center to a horizontal edge
	psXLeft = 54  // leftmost drawing X
	psYTop  = 708 // topmost drawing Y
)

// psX returns the PostScript x of the center of column c.
func psX(c int) int {
	return psXLeft + psE + (3*psE*c)/2
}

// psY returns the PostScript y of the center of cell (r, c); odd columns sit
// half a cell lower. PostScript y grows upward, hence the subtraction.
func psY(r, c int) int {
	return psYTop - psV - 2*psV*r - (c&1)*psV
}

// psWriter wraps an io.Writer and remembers the first write error, so the
// drawing code can stay free of per-line error plumbing.
type psWriter struct {
	w   io.Writer
	err error
}

func (p *psWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// line strokes a single segment.
func (p *psWriter) line(x1, y1, x2, y2 int) {
	p.printf("newpath %d %d moveto %d %d lineto stroke\n", x1, y1, x2, y2)
}

// WritePostScript emits a two-page PostScript document for g: page one the
// maze alone, page two the maze with the solution path overlaid in blue.
// Returns ErrNilGrid, ErrNilWriter, or the first underlying write error.
func WritePostScript(w io.Writer, g *hexgrid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if w == nil {
		return ErrNilWriter
	}
	p := &psWriter{w: w}

	p.printf("%%!PS-Adobe-2.0\n\n%%%%Pages: 2\n%%%%Page: 1 1\n")
	p.printf("/Arial findfont 20 scalefont setfont\n54 730 moveto (Random Maze - %dx%d) show\n",
		g.Rows(), g.Cols())
	drawMaze(p, g, false)
	p.printf("showpage\n")

	p.printf("%%%%Page: 2 2\n")
	p.printf("/Arial findfont 20 scalefont setfont\n54 730 moveto (Random Maze With Solution - %dx%d) show\n",
		g.Rows(), g.Cols())
	drawMaze(p, g, true)
	p.printf("showpage\n")

	return p.err
}

// drawMaze strokes every wall of g, and when solution is set, the path
// segments between visited cells.
//
// Interior walls are drawn from their owning cell only (UpRight, DownRight,
// Down), so no shared wall is stroked twice; the remaining exterior sides
// are added explicitly.
func drawMaze(p *psWriter, g *hexgrid.Grid, solution bool) {
	rows, cols := g.Rows(), g.Cols()
	p.printf("0.25 setlinewidth\n")

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := psX(c), psY(r, c)
			if g.HasWall(r, c, hexgrid.UpRight) {
				p.line(x+psE/2, y+psV, x+psE, y)
			}
			if g.HasWall(r, c, hexgrid.DownRight) {
				p.line(x+psE, y, x+psE/2, y-psV)
			}
			if g.HasWall(r, c, hexgrid.Down) {
				p.line(x+psE/2, y-psV, x-psE/2, y-psV)
			}
		}
	}

	// Left exterior of column 0.
	for r := 0; r < rows; r++ {
		x, y := psX(0), psY(r, 0)
		p.line(x-psE/2, y+psV, x-psE, y)
		p.line(x-psE, y, x-psE/2, y-psV)
	}
	// Top exterior of row 0.
	for c := 0; c < cols; c++ {
		x, y := psX(c), psY(0, c)
		p.line(x-psE/2, y+psV, x+psE/2, y+psV)
	}
	// Upper-left rims of even columns past the first: their UpLeft neighbor
	// row lies outside the grid.
	for c := 2; c < cols; c += 2 {
		x, y := psX(c), psY(0, c)
		p.line(x-psE/2, y+psV, x-psE, y)
	}
	// Lower-left rims of odd columns on the bottom row.
	for c := 1; c < cols; c += 2 {
		x, y := psX(c), psY(rows-1, c)
		p.line(x-psE/2, y-psV, x-psE, y)
	}

	if !solution {
		return
	}

	// Solution overlay: blue, thicker, rounded caps. A segment joins the
	// centers of two visited cells sharing an open passage; the higher-index
	// rule draws each segment once.
	p.printf("gsave 0 0 1 setrgbcolor currentlinewidth 5 mul setlinewidth 1 setlinecap\n")
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
				if !ok || !g.Visited(nr, nc) {
					continue
				}
				if g.Index(nr, nc) > g.Index(r, c) {
					p.line(psX(c), psY(r, c), psX(nc), psY(nr, nc))
				}
			}
		}
	}
	p.printf("grestore\n")
}
