// Package mst: disjoint-set (union-find) structure over dense vertex ids.

package mst

// DisjointSet partitions the integers [0, n) into disjoint sets, supporting
// near-constant amortized Find and Union. Find is iterative with path
// halving and Union attaches by rank, so tree depth stays O(log n) and stack
// usage is bounded regardless of input size — vertex counts in the hundreds
// of thousands are routine for the MST path.
//
// The zero value is not usable; construct with NewDisjointSet.
// Not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[v] == v at roots
	rank   []int // upper bound on tree height, maintained per root
	sets   int   // live set count
}

// NewDisjointSet returns a DisjointSet of n singleton sets.
// Panics on negative n (programmer error).
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		panic("mst: NewDisjointSet called with negative size")
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size n of the element universe.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets currently held.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the representative of v's set. Path halving: every other
// node on the walk is re-pointed at its grandparent, so repeated Finds
// flatten the tree without recursion.
// Panics if v is outside [0, Len()).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// SameSet reports whether u and v belong to the same set.
func (d *DisjointSet) SameSet(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Union merges the sets containing u and v and reports whether a merge
// happened (false when they were already together). The shallower tree is
// attached under the deeper root; equal ranks attach v's root under u's and
// bump its rank.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(u, v int) bool {
	rootU := d.Find(u)
	rootV := d.Find(v)
	if rootU == rootV {
		return false
	}

	switch {
	case d.rank[rootU] < d.rank[rootV]:
		d.parent[rootU] = rootV
	case d.rank[rootU] > d.rank[rootV]:
		d.parent[rootV] = rootU
	default:
		d.parent[rootV] = rootU
		d.rank[rootU]++
	}
	d.sets--

	return true
}
