package unionfind

// DSU tracks a partition of the integers [0, n) into disjoint sets.
// The zero value is unusable; construct with New.
type DSU struct {
	parent []int
	rank   []int
	count  int
}

// New returns a DSU where each of the n elements is its own singleton set.
// n < 0 is treated as 0.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements the structure was built over.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Find returns the representative of the set containing x.
// It walks up to the root, pointing each visited element at its grandparent
// on the way (path compression), so repeated calls flatten the tree.
// Find is idempotent: the representative only changes when sets merge.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one. It reports whether the two were previously
// disjoint; false means x and y were already connected.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
