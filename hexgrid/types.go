// Package hexgrid defines core types and sentinel errors for the
// hexagonal-offset maze grid shared by the carve and solve packages.
package hexgrid

import "errors"

// Maximum grid dimensions accepted by NewGrid.
const (
	MaxRows = 50
	MaxCols = 50
)

// ErrBadDimensions is returned when rows or cols fall outside [1, MaxRows]×[1, MaxCols].
var ErrBadDimensions = errors.New("hexgrid: dimensions must be within [1,50]×[1,50]")

// Direction identifies one of the six sides of a hexagonal cell.
// Each direction is a distinct bit so a wall set can be stored in one byte.
type Direction uint8

const (
	// Up is the neighbor directly above (row-1, same column).
	Up Direction = 0x01
	// UpRight is the upper-right diagonal neighbor.
	UpRight Direction = 0x02
	// DownRight is the lower-right diagonal neighbor.
	DownRight Direction = 0x04
	// Down is the neighbor directly below (row+1, same column).
	Down Direction = 0x08
	// DownLeft is the lower-left diagonal neighbor.
	DownLeft Direction = 0x10
	// UpLeft is the upper-left diagonal neighbor.
	UpLeft Direction = 0x20
)

// allWalls masks the six wall bits of a Cell.
const allWalls Direction = Up | UpRight | DownRight | Down | DownLeft | UpLeft

// visitedBit marks membership in a solved path. It sits above the wall bits
// and is never touched by wall operations.
const visitedBit uint8 = 0x40

// Directions lists all six directions in canonical iteration order.
// Algorithms that scan a cell's sides range over this slice so traversal
// order is identical everywhere.
var Directions = []Direction{Up, UpRight, DownRight, Down, DownLeft, UpLeft}

// Coord is a (row, column) cell position.
type Coord struct {
	Row, Col int
}

// Cell packs six wall-presence bits and one visited bit.
// The packing is an implementation detail; use the named queries.
type Cell uint8

// HasWall reports whether the wall on side d is present.
func (c Cell) HasWall(d Direction) bool {
	return uint8(c)&uint8(d) != 0
}

// Visited reports whether the cell is marked as part of a solved path.
func (c Cell) Visited() bool {
	return uint8(c)&visitedBit != 0
}
