package core

import "math"

// Fixed lifecycle constants shared by node kinematics and edge reconciliation.
const (
	// FadeInRate is the per-frame opacity increment, in (0,1].
	FadeInRate = 0.06

	// FadeOutRate is the per-frame opacity decrement, in (0,1].
	FadeOutRate = 0.03

	// BorderFade is the signed margin used by the out-of-bounds test.
	// Being negative, a node fades only once it has drifted slightly past an edge.
	BorderFade = -0.02
)

// FadeIn raises o by FadeInRate, ceilinged at 1.
func FadeIn(o float64) float64 {
	return math.Min(o+FadeInRate, 1)
}

// FadeOut lowers o by FadeOutRate, floored at 0.
func FadeOut(o float64) float64 {
	return math.Max(o-FadeOutRate, 0)
}
