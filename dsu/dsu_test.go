package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/driftgraph/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnion_SelfIsFalse verifies that an element never merges with itself.
func TestUnion_SelfIsFalse(t *testing.T) {
	d := dsu.New(5)
	for i := 0; i < 5; i++ {
		assert.False(t, d.Union(i, i), "Union(%d,%d)", i, i)
	}
	assert.Equal(t, 5, d.Sets())

	require.True(t, d.Union(0, 1))
	assert.False(t, d.Union(1, 1))
	assert.False(t, d.Union(1, 0), "already merged")
	assert.Equal(t, 4, d.Sets())
}

// TestUnion_Transitive chains unions and checks connectivity.
func TestUnion_Transitive(t *testing.T) {
	d := dsu.New(6)
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(1, 3))

	assert.True(t, d.Connected(0, 2))
	assert.True(t, d.Connected(3, 0))
	assert.False(t, d.Connected(0, 4))
	assert.False(t, d.Connected(4, 5))
	assert.Equal(t, d.Find(0), d.Find(3))
	assert.Equal(t, 3, d.Sets())
	assert.Equal(t, 6, d.Len())
}

// TestNew_Degenerate covers empty and negative domains.
func TestNew_Degenerate(t *testing.T) {
	assert.Zero(t, dsu.New(0).Len())
	assert.Zero(t, dsu.New(-3).Len())
	assert.Zero(t, dsu.New(-3).Sets())

	one := dsu.New(1)
	assert.Equal(t, 0, one.Find(0))
	assert.Equal(t, 1, one.Sets())
}

// TestRandomUnions_MatchNaive compares against a quadratic relabelling oracle.
func TestRandomUnions_MatchNaive(t *testing.T) {
	const n = 64
	r := rand.New(rand.NewSource(7))
	d := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 200; step++ {
		i, j := r.Intn(n), r.Intn(n)
		want := label[i] != label[j]
		assert.Equal(t, want, d.Union(i, j), "step %d Union(%d,%d)", step, i, j)
		if want {
			old := label[j]
			for k := range label {
				if label[k] == old {
					label[k] = label[i]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, label[i] == label[j], d.Connected(i, j))
		}
	}
}
