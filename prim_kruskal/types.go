// Package prim_kruskal defines configuration options and sentinel errors for
// spanning-tree computation over weighted index pairs.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDimensionMismatch indicates a pair references an index outside [0,n).
var ErrDimensionMismatch = errors.New("prim_kruskal: pair index out of range")

// ErrLoopNotAllowed indicates a pair joins an element to itself.
var ErrLoopNotAllowed = errors.New("prim_kruskal: self-loop pair")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (dense O(n²) growth from element 0).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted pairs and union-find).
const MethodKruskal = "kruskal"

// Pair is an undirected weighted candidate edge between elements I and J.
// Producers are expected to emit I < J; the algorithms accept either order.
type Pair struct {
	I, J   int
	Weight float64
}

// MSTOptions configures which spanning-tree algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//
// Complexity: O(n²) for Prim, O(E log E + α(n)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the spanning-tree algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(n, sorted); sorted must be ascending by Weight.
//	– MethodPrim:    Prim(n, sorted); order of pairs is irrelevant.
//	– otherwise:     ErrUnknownMethod.
//
// Returns the tree (or forest, if the pairs do not connect all n elements)
// in the order edges were accepted.
func Compute(n int, sorted []Pair, opts MSTOptions) ([]Pair, error) {
	switch opts.Method {
	case MethodKruskal, "":
		return Kruskal(n, sorted)
	case MethodPrim:
		return Prim(n, sorted)
	default:
		return nil, fmt.Errorf("Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}

// SortPairs sorts pairs ascending by Weight. The sort is stable so equal
// weights keep their generation order, which keeps tie-breaking predictable.
// Complexity: O(E log E).
func SortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Weight < pairs[j].Weight
	})
}

// TotalWeight sums the weights of tree.
func TotalWeight(tree []Pair) float64 {
	var total float64
	for _, p := range tree {
		total += p.Weight
	}

	return total
}

// validatePairs checks every pair against the domain [0,n).
// Complexity: O(E).
func validatePairs(method string, n int, pairs []Pair) error {
	for k, p := range pairs {
		if p.I < 0 || p.I >= n || p.J < 0 || p.J >= n {
			return fmt.Errorf("%s: pair %d (%d,%d) with n=%d: %w", method, k, p.I, p.J, n, ErrDimensionMismatch)
		}
		if p.I == p.J {
			return fmt.Errorf("%s: pair %d (%d,%d): %w", method, k, p.I, p.J, ErrLoopNotAllowed)
		}
	}

	return nil
}
