package common

import (
	gomath "math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the double-precision machine epsilon used as the
// convergence tolerance by the series and fraction evaluators.
var Epsilon = gomath.Nextafter(1, 2) - 1

// AlmostInf is the "almost infinity" sentinel: a saturated value that
// stays distinguishable from IEEE Inf in downstream comparisons.
const AlmostInf = 0.9 * gomath.MaxFloat64

// zeroULPs is the width of the band around zero treated as numerically zero.
const zeroULPs = 1000

// Zero reports whether x is numerically indistinguishable from zero.
func Zero(x float64) bool {
	return x == 0 || scalar.EqualWithinULP(x, 0, zeroULPs)
}

// Equal reports whether a and b agree within a few ULPs.
func Equal(a, b float64) bool {
	return a == b || scalar.EqualWithinULP(a, b, zeroULPs)
}

// Round rounds half away from zero to the nearest integer.
func Round(x float64) int { return int(gomath.Round(x)) }

// IsInt reports whether x holds an integer value exactly.
func IsInt(x float64) bool {
	return !gomath.IsInf(x, 0) && !gomath.IsNaN(x) && x == gomath.Trunc(x)
}

// Saturate clamps x to the AlmostInf sentinel band.
func Saturate(x float64) float64 {
	switch {
	case x < -AlmostInf:
		return -AlmostInf
	case x > AlmostInf:
		return AlmostInf
	}
	return x
}
