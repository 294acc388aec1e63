// Package unionfind implements a disjoint-set (union-find) structure over
// integer cell indices in [0, n).
//
// What
//
//   - Find(x): representative of x's set, with iterative path compression.
//   - Union(x, y): merge two sets (union by rank); reports whether a merge
//     actually happened, which is exactly the cycle test maze carving needs.
//   - Connected(x, y) and Count() for membership and component queries.
//
// Why
//
//	Randomized Kruskal-style maze generation removes a wall only when its two
//	cells lie in different components. Union-find answers that in amortized
//	near-constant time, so carving a rows×cols maze costs O(rows·cols·α).
//
// Determinism
//
//	All operations are pure bookkeeping over the parent/rank arrays; given
//	the same sequence of calls the structure evolves identically.
//
// Complexity: Find/Union/Connected amortized O(α(n)); memory O(n).
package unionfind
