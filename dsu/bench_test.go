package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/driftgraph/dsu"
)

// BenchmarkUnionFind measures random unions over 300 elements, the largest
// population the simulation allows.
func BenchmarkUnionFind(b *testing.B) {
	const n = 300
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, 4*n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
