// Package barrier computes angular-momentum Blatt-Weisskopf
// centrifugal-barrier factors.
//
// See S.U.Chung, "Formulas for Angular-Momentum Barrier Factors",
// BNL-QGS-06-01.
package barrier

import (
	gomath "math"
	"math/cmplx"

	"github.com/MohamedElashri/ostap/math/clenshaw"
)

// G is the complex-valued polynomial gₗ(x) with integer coefficients
// entering the barrier factor. It satisfies
//
//	g_{l+1}(x) = (2l+1)·g_l(x) - x²·g_{l-1}(x)
//
// with g₀ ≡ 1 and g₁ = 1 - ix. The recurrence is evaluated per
// component through the backward-recurrence engine, real and imaginary
// parts sharing the coefficient functions and differing only in seeds.
func G(x float64, l int) complex128 {
	switch l {
	case 0:
		return 1
	case 1:
		return complex(1, -x)
	}

	alpha := func(k int, _ float64) float64 { return float64(2*k + 1) }
	beta := func(_ int, t float64) float64 { return -t * t }
	one := func(_ float64) float64 { return 1 }
	zero := func(_ float64) float64 { return 0 }
	negT := func(t float64) float64 { return -t }

	re := clenshaw.Term(x, l, alpha, beta, one, one)
	im := clenshaw.Term(x, l, alpha, beta, zero, negT)
	return complex(re, im)
}

// AbsG is |gₗ(x)|.
func AbsG(x float64, l int) float64 { return cmplx.Abs(G(x, l)) }

// Factor is the Blatt-Weisskopf barrier factor
//
//	f_l(x) = xˡ / |gₗ(x)|
//
// with f₀ ≡ 1. It behaves as O(xˡ) near threshold and tends to 1 for
// large scaled momentum.
func Factor(x float64, l int) float64 {
	switch l {
	case 0:
		return 1
	case 1:
		return x / gomath.Hypot(1, x)
	}
	return gomath.Pow(x, float64(l)) / AbsG(x, l)
}
