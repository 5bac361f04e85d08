// Package cfrac evaluates finite continued fractions by forward
// recurrence on the numerator/denominator continuants. The sequence
// length is caller-controlled; evaluation is not adaptive.
package cfrac

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/common"
)

// Simple evaluates
//
//	f = a₀ + 1/(a₁ + 1/(a₂ + ...))
//
// An empty sequence yields 0.
func Simple(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	c := common.NewContinuant(0, 1, 1, 0)
	for _, ai := range a {
		c.Step(1, ai)
	}
	return c.Value()
}

// SimpleB evaluates
//
//	f = b₀/(1 + b₁/(1 + ...))
//
// An empty sequence, or a numerically zero leading b₀, yields 0 (the
// algebraic limit of the fraction).
func SimpleB(b []float64) float64 {
	if len(b) == 0 || common.Zero(b[0]) {
		return 0
	}
	c := common.NewContinuant(1, 0, 0, 1)
	for _, bi := range b {
		c.Step(bi, 1)
	}
	return c.Value()
}

// Generalized evaluates
//
//	f = [b₀ +] a₁/(b₁ + a₂/(b₂ + ...))
//
// with len(b) equal to len(a) (no leading b₀) or len(a)+1 (leading b₀).
// Any other length combination is a caller error and yields NaN.
func Generalized(a, b []float64) float64 {
	switch {
	case len(a) == len(b):
		return generalized(a, b)
	case len(a)+1 == len(b):
		return b[0] + generalized(a, b[1:])
	}
	return gomath.NaN()
}

func generalized(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	c := common.NewContinuant(1, 0, 0, 1)
	for i := range a {
		c.Step(a[i], b[i])
	}
	return c.Value()
}
