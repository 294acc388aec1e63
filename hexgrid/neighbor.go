package hexgrid

// Neighbor resolves the cell adjacent to (row, col) in direction d on a
// rows×cols grid. It returns the neighbor coordinate and ok=true, or ok=false
// when the neighbor falls outside [0,rows)×[0,cols) or d is not a single
// valid direction.
//
// Up and Down change only the row. The four diagonals change the column by ±1
// and pick the row by column parity: toward the upper row the offset is
// -1+(col&1), toward the lower row it is (col&1). Odd columns sit half a cell
// lower than even columns, which is exactly what those two offsets encode.
//
// Complexity: O(1), no side effects.
func Neighbor(row, col int, d Direction, rows, cols int) (nr, nc int, ok bool) {
	nr, nc = row, col
	switch d {
	case Up:
		nr--
	case Down:
		nr++
	case UpRight:
		nr = row - 1 + (col & 1)
		nc++
	case DownRight:
		nr = row + (col & 1)
		nc++
	case UpLeft:
		nr = row - 1 + (col & 1)
		nc--
	case DownLeft:
		nr = row + (col & 1)
		nc--
	default:
		return 0, 0, false
	}
	if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
		return 0, 0, false
	}

	return nr, nc, true
}
