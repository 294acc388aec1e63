package hexgrid_test

import (
	"testing"

	"github.com/katalvlaran/hexmaze/hexgrid"
)

// TestOpposite_Pairs verifies the three complementary direction pairs.
func TestOpposite_Pairs(t *testing.T) {
	pairs := []struct{ a, b hexgrid.Direction }{
		{hexgrid.Up, hexgrid.Down},
		{hexgrid.UpRight, hexgrid.DownLeft},
		{hexgrid.DownRight, hexgrid.UpLeft},
	}
	for _, p := range pairs {
		if got := p.a.Opposite(); got != p.b {
			t.Errorf("%v.Opposite() = %v; want %v", p.a, got, p.b)
		}
		if got := p.b.Opposite(); got != p.a {
			t.Errorf("%v.Opposite() = %v; want %v", p.b, got, p.a)
		}
	}
}

// TestOpposite_Involution checks Opposite∘Opposite is the identity for all six.
func TestOpposite_Involution(t *testing.T) {
	for _, d := range hexgrid.Directions {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v; want %v", d, got, d)
		}
	}
}

// TestOpposite_Invalid maps non-direction values to zero.
func TestOpposite_Invalid(t *testing.T) {
	for _, d := range []hexgrid.Direction{0, hexgrid.Up | hexgrid.UpRight, 0x40} {
		if got := d.Opposite(); got != 0 {
			t.Errorf("Direction(%#x).Opposite() = %v; want 0", uint8(d), got)
		}
	}
}

// TestDirection_Distinct ensures the six flags are distinct single bits.
func TestDirection_Distinct(t *testing.T) {
	var seen hexgrid.Direction
	for _, d := range hexgrid.Directions {
		if d&(d-1) != 0 {
			t.Errorf("%v = %#x is not a single bit", d, uint8(d))
		}
		if seen&d != 0 {
			t.Errorf("%v overlaps a previous direction", d)
		}
		seen |= d
	}
}
