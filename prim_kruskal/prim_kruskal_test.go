package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/driftgraph/dsu"
	"github.com/katalvlaran/driftgraph/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle returns the pairs A-B(1), B-C(2), A-C(3) over indices 0,1,2.
// The MST consists of A-B and B-C with total weight 3.
func triangle() []prim_kruskal.Pair {
	pairs := []prim_kruskal.Pair{
		{I: 0, J: 2, Weight: 3},
		{I: 0, J: 1, Weight: 1},
		{I: 1, J: 2, Weight: 2},
	}
	prim_kruskal.SortPairs(pairs)

	return pairs
}

// completePairs builds every i<j pair on n elements with random weights.
// The random number generator is seeded deterministically for reproducibility.
func completePairs(n int, seed int64) []prim_kruskal.Pair {
	r := rand.New(rand.NewSource(seed))
	pairs := make([]prim_kruskal.Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, prim_kruskal.Pair{I: i, J: j, Weight: 1 + r.Float64()*99})
		}
	}
	prim_kruskal.SortPairs(pairs)

	return pairs
}

// assertSpanning checks that tree has n-1 edges and connects all n elements.
func assertSpanning(t *testing.T, n int, tree []prim_kruskal.Pair) {
	t.Helper()
	require.Len(t, tree, n-1)
	ds := dsu.New(n)
	for _, p := range tree {
		assert.True(t, ds.Union(p.I, p.J), "tree edge (%d,%d) closes a cycle", p.I, p.J)
	}
	assert.Equal(t, 1, ds.Sets())
}

// TestKruskal_Triangle ensures Kruskal picks the two cheapest edges in order.
func TestKruskal_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Kruskal(3, triangle())
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Pair{
		{I: 0, J: 1, Weight: 1},
		{I: 1, J: 2, Weight: 2},
	}, tree)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
}

// TestPrim_Triangle ensures Prim finds the same tree weight.
func TestPrim_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Prim(3, triangle())
	require.NoError(t, err)
	assertSpanning(t, 3, tree)
	assert.Equal(t, 3.0, prim_kruskal.TotalWeight(tree))
}

// TestTrivialDomains verifies empty results for n = 0 and n = 1.
func TestTrivialDomains(t *testing.T) {
	for _, n := range []int{0, 1} {
		k, err := prim_kruskal.Kruskal(n, nil)
		require.NoError(t, err)
		assert.Empty(t, k)

		p, err := prim_kruskal.Prim(n, nil)
		require.NoError(t, err)
		assert.Empty(t, p)
	}
}

// TestValidation rejects out-of-range and self-loop pairs.
func TestValidation(t *testing.T) {
	outOfRange := []prim_kruskal.Pair{{I: 0, J: 5, Weight: 1}}
	_, err := prim_kruskal.Kruskal(3, outOfRange)
	assert.ErrorIs(t, err, prim_kruskal.ErrDimensionMismatch)
	_, err = prim_kruskal.Prim(3, outOfRange)
	assert.ErrorIs(t, err, prim_kruskal.ErrDimensionMismatch)

	loop := []prim_kruskal.Pair{{I: 1, J: 1, Weight: 1}}
	_, err = prim_kruskal.Kruskal(3, loop)
	assert.ErrorIs(t, err, prim_kruskal.ErrLoopNotAllowed)
	_, err = prim_kruskal.Prim(3, loop)
	assert.ErrorIs(t, err, prim_kruskal.ErrLoopNotAllowed)
}

// TestForest verifies both algorithms return a forest for disconnected input.
func TestForest(t *testing.T) {
	// {0,1} and {2,3} with no pair between them.
	pairs := []prim_kruskal.Pair{{I: 0, J: 1, Weight: 1}, {I: 2, J: 3, Weight: 1}}

	k, err := prim_kruskal.Kruskal(4, pairs)
	require.NoError(t, err)
	assert.Len(t, k, 2)

	p, err := prim_kruskal.Prim(4, pairs)
	require.NoError(t, err)
	assert.Len(t, p, 2)
}

// TestCompute_Dispatch covers method selection and the unknown-method error.
func TestCompute_Dispatch(t *testing.T) {
	pairs := completePairs(12, 3)

	k, err := prim_kruskal.Compute(12, pairs, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	p, err := prim_kruskal.Compute(12, pairs, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
	require.NoError(t, err)

	assertSpanning(t, 12, k)
	assertSpanning(t, 12, p)
	assert.InDelta(t, prim_kruskal.TotalWeight(k), prim_kruskal.TotalWeight(p), 1e-9)

	_, err = prim_kruskal.Compute(12, pairs, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestSortPairs_Stable checks that equal weights keep their input order.
func TestSortPairs_Stable(t *testing.T) {
	pairs := []prim_kruskal.Pair{
		{I: 0, J: 1, Weight: 2},
		{I: 0, J: 2, Weight: 1},
		{I: 1, J: 2, Weight: 2},
		{I: 0, J: 3, Weight: 1},
	}
	prim_kruskal.SortPairs(pairs)
	assert.Equal(t, []prim_kruskal.Pair{
		{I: 0, J: 2, Weight: 1},
		{I: 0, J: 3, Weight: 1},
		{I: 0, J: 1, Weight: 2},
		{I: 1, J: 2, Weight: 2},
	}, pairs)
}
