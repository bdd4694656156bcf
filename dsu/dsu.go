// Package dsu implements a disjoint-set (union-find) forest over the integer
// domain [0,n), with union by rank and full path compression.
//
// A DisjointSet is built fresh for every spanning-tree computation; there is
// no removal operation and indices are assumed valid by construction.
package dsu

// DisjointSet partitions {0,...,n-1} into disjoint sets.
//
// parent[i] == i marks a root. rank[i] is an upper bound on the height of the
// tree rooted at i and is only meaningful for roots.
type DisjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns n singleton sets. A negative n is treated as 0.
// Complexity: O(n) time and memory.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the element domain.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Find returns the representative of the set containing i.
//
// Steps:
//  1. Walk parent pointers up to the root.
//  2. Walk again, pointing every visited element directly at the root.
//
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Find(i int) int {
	// 1. Locate the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2. Compress the path.
	for d.parent[i] != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets containing i and j.
// Returns true if they were distinct and are now one set, false if they were
// already the same set (so Union(i, i) is always false).
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}

	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[ri] < d.rank[rj]:
		d.parent[ri] = rj
	case d.rank[ri] > d.rank[rj]:
		d.parent[rj] = ri
	default:
		// Equal ranks: ri becomes the new root and grows by one.
		d.parent[rj] = ri
		d.rank[ri]++
	}
	d.sets--

	return true
}

// Connected reports whether i and j are in the same set.
func (d *DisjointSet) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}
