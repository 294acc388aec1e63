// Package solve defines tunable options, the solve result, and sentinel
// errors for BFS maze solving.
package solve

import (
	"errors"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// Sentinel errors for solver execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// e.g. a start or end cell outside the grid.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrTraceInconsistent is returned when the forward trace finds no
	// neighbor with distance one less despite the start being reachable.
	// It signals a corrupted grid or distance table, never a plain "no path".
	ErrTraceInconsistent = errors.New("solve: distance table contradicts wall state")
)

// Unreached is the sentinel distance for cells BFS never assigned.
const Unreached = -1

// Option configures solving via functional arguments. Option validation is
// deferred to Solve, where grid dimensions are known.
type Option func(*Options)

// Options holds the endpoints of the wanted path.
type Options struct {
	// Start is where the traced path begins. Defaults to the top-left
	// corner (0,0).
	Start hexgrid.Coord

	// End is where BFS is seeded and the traced path ends. Defaults to the
	// bottom-right corner (rows−1, cols−1).
	End hexgrid.Coord

	// set flags distinguish "explicitly (0,0)" from "defaulted".
	startSet, endSet bool
}

// DefaultOptions returns Options selecting the corner-to-corner path.
func DefaultOptions() Options {
	return Options{}
}

// WithStart sets the cell the traced path begins at.
func WithStart(row, col int) Option {
	return func(o *Options) {
		o.Start = hexgrid.Coord{Row: row, Col: col}
		o.startSet = true
	}
}

// WithEnd sets the cell BFS is seeded at and the traced path ends at.
func WithEnd(row, col int) Option {
	return func(o *Options) {
		o.End = hexgrid.Coord{Row: row, Col: col}
		o.endSet = true
	}
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Solved is true when a path from start to end exists.
	Solved bool

	// Path lists the cells of the shortest route, start first, end last.
	// Nil when Solved is false. Exactly these cells carry the grid's
	// visited marks.
	Path []hexgrid.Coord

	// Dist is the row-major table of BFS hop-counts from the end cell over
	// open passages; Unreached marks cells the end cannot reach.
	Dist []int
}
