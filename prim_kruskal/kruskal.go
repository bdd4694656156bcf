// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm
// over weighted index pairs.
package prim_kruskal

import (
	"github.com/katalvlaran/driftgraph/dsu"
)

// Kruskal computes a minimum spanning tree of the elements [0,n) from pairs
// that are already sorted ascending by weight (see SortPairs).
//
// Error Conditions:
//   - ErrDimensionMismatch : a pair references an index outside [0,n).
//   - ErrLoopNotAllowed    : a pair has I == J.
//
// Steps:
//  1. Validate every pair against [0,n).
//  2. If n <= 1, the tree is trivially empty.
//  3. Build a fresh disjoint-set of size n.
//  4. Scan pairs in order; accept a pair when Union reports its endpoints were
//     in different components.
//  5. Stop once n-1 pairs are accepted or the pairs are exhausted. Fewer than
//     n-1 accepted pairs means the input did not connect every element and
//     the result is a spanning forest.
//
// Complexity: O(E·α(n)) given sorted input. Memory: O(n).
func Kruskal(n int, sorted []Pair) ([]Pair, error) {
	// 1. Validate.
	if err := validatePairs("Kruskal", n, sorted); err != nil {
		return nil, err
	}

	// 2. Trivial domains.
	if n <= 1 {
		return []Pair{}, nil
	}

	// 3. Fresh union-find for this computation only.
	ds := dsu.New(n)
	tree := make([]Pair, 0, n-1)

	// 4. Accept pairs that join two components.
	for _, p := range sorted {
		if ds.Union(p.I, p.J) {
			tree = append(tree, p)
			// 5. A spanning tree has exactly n-1 edges.
			if len(tree) == n-1 {
				break
			}
		}
	}

	return tree, nil
}
