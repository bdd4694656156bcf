// Package kinematics - RNG utilities for the node spawner.
//
// Goals:
//   - Reproducibility on demand: a non-zero seed yields identical runs.
//   - Variety by default: seed==0 draws from the clock, since the animation
//     is not meant to repeat between runs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Simulator owns its *rand.Rand
//     and is only ever driven by one step at a time.
package kinematics

import (
	"math/rand"
	"time"
)

// RandFromSeed returns a *rand.Rand for seed.
// Policy: seed==0 ⇒ seed from time.Now(); otherwise use the seed verbatim.
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}

// uniformCentered returns a uniform draw in [-0.5, 0.5).
func uniformCentered(r *rand.Rand) float64 {
	return r.Float64() - 0.5
}

// skewedRadius draws a radius favouring small circles: rand^5/60 + 0.002.
// The result lies in [0.002, 0.002+1/60).
func skewedRadius(r *rand.Rand) float64 {
	u := r.Float64()
	return u*u*u*u*u/60 + minRadius
}
