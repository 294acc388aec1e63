package hexgrid

// Opposite returns the complementary direction: Up↔Down, UpRight↔DownLeft,
// DownRight↔UpLeft. It is used to keep both sides of a shared wall consistent;
// Opposite is its own inverse over the six valid directions.
// Returns 0 for anything that is not a single valid direction bit.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	case UpLeft:
		return DownRight
	default:
		return 0
	}
}

// String returns a short human-readable name, mainly for test failure output.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case UpLeft:
		return "UpLeft"
	default:
		return "Direction(invalid)"
	}
}
