package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/hexmaze/unionfind"
)

// TestNew_Singletons verifies every element starts in its own set.
func TestNew_Singletons(t *testing.T) {
	d := unionfind.New(5)
	if d.Len() != 5 {
		t.Fatalf("Len() = %d; want 5", d.Len())
	}
	if d.Count() != 5 {
		t.Fatalf("Count() = %d; want 5", d.Count())
	}
	for i := 0; i < 5; i++ {
		if root := d.Find(i); root != i {
			t.Errorf("Find(%d) = %d; want itself", i, root)
		}
		for j := i + 1; j < 5; j++ {
			if d.Connected(i, j) {
				t.Errorf("Connected(%d,%d) = true on fresh DSU", i, j)
			}
		}
	}
}

// TestUnion_MergeAndReport checks merge reporting and component counting.
func TestUnion_MergeAndReport(t *testing.T) {
	d := unionfind.New(4)
	if !d.Union(0, 1) {
		t.Error("Union(0,1) = false; want merge")
	}
	if d.Union(1, 0) {
		t.Error("Union(1,0) = true; elements already connected")
	}
	if !d.Union(2, 3) {
		t.Error("Union(2,3) = false; want merge")
	}
	if got := d.Count(); got != 2 {
		t.Errorf("Count() = %d; want 2", got)
	}
	if !d.Union(0, 3) {
		t.Error("Union(0,3) = false; want merge of the two components")
	}
	if got := d.Count(); got != 1 {
		t.Errorf("Count() = %d; want 1", got)
	}
	for i := 1; i < 4; i++ {
		if !d.Connected(0, i) {
			t.Errorf("Connected(0,%d) = false after full merge", i)
		}
	}
}

// TestFind_Idempotent verifies the representative is stable between merges
// and that path compression does not change set membership.
func TestFind_Idempotent(t *testing.T) {
	d := unionfind.New(8)
	// Build a chain 0-1-2-3-4-5-6-7.
	for i := 0; i < 7; i++ {
		d.Union(i, i+1)
	}
	root := d.Find(0)
	for i := 0; i < 8; i++ {
		if got := d.Find(i); got != root {
			t.Errorf("Find(%d) = %d; want shared root %d", i, got, root)
		}
	}
	// Repeated Find returns the same root.
	if d.Find(7) != d.Find(7) {
		t.Error("Find(7) not idempotent")
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d; want 1", d.Count())
	}
}

// TestNew_Degenerate covers n == 0 and negative n.
func TestNew_Degenerate(t *testing.T) {
	for _, n := range []int{0, -3} {
		d := unionfind.New(n)
		if d.Len() != 0 || d.Count() != 0 {
			t.Errorf("New(%d): Len=%d Count=%d; want 0,0", n, d.Len(), d.Count())
		}
	}
}
