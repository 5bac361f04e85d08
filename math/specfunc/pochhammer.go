package specfunc

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/backend"
	"github.com/MohamedElashri/ostap/math/common"
)

// smallN is the largest order evaluated by the closed-form base case.
const smallN = 16

// dimN is the largest order handled by the dimidation recursion before
// falling back to the log-gamma quotient.
const dimN = 96

// nearIntDelta is the window for the "stay on the dimidation path"
// near-negative-integer test.
const nearIntDelta = 1e-8

// pochSmall evaluates the rising factorial and its derivative for
// n ≤ smallN by the exact product recurrence
//
//	v_{k+1} = v_k·(x+k),  d_{k+1} = d_k·(x+k) + v_k.
func pochSmall(x float64, n int) (v, d float64) {
	v, d = 1, 0
	for k := 0; k < n; k++ {
		f := x + float64(k)
		v, d = v*f, d*f+v
	}
	return v, d
}

// poch mirrors the layered evaluation of the rising factorial:
// closed small-N forms, reflection for strongly negative x, dimidation
// for moderate N (or near-negative-integer x), log-gamma quotient
// otherwise.
func poch(x float64, n int) float64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x
	case n <= smallN:
		v, _ := pochSmall(x, n)
		return v
	}

	if common.Zero(x) {
		return 0
	}
	// avoid catastrophic cancellation near the negative real axis
	if x < 0.5-float64(n) {
		return poch(gomath.Abs(x)-float64(n)+1, n) * parity(n)
	}

	if n <= dimN || useDimidation(x, n) {
		k2 := n / 2
		k1 := k2 + n%2
		return gomath.Ldexp(poch(gomath.Ldexp(x, -1), k1), k1) *
			gomath.Ldexp(poch(gomath.Ldexp(x+1, -1), k2), k2)
	}

	return gammaRatio(x, n)
}

// poch2 carries the derivative through the same decomposition.
func poch2(x float64, n int) (v, d float64) {
	switch {
	case n == 0:
		return 1, 0
	case n == 1:
		return x, 1
	case n <= smallN:
		return pochSmall(x, n)
	}

	if x < 0.5-float64(n) {
		rv, rd := poch2(gomath.Abs(x)-float64(n)+1, n)
		s := parity(n)
		return s * rv, -s * rd
	}

	if n <= dimN || useDimidation(x, n) {
		k2 := n / 2
		k1 := k2 + n%2
		v1, d1 := poch2(gomath.Ldexp(x, -1), k1)
		v2, d2 := poch2(gomath.Ldexp(x+1, -1), k2)
		return gomath.Ldexp(v1*v2, n),
			gomath.Ldexp(v1*d2, n-1) + gomath.Ldexp(d1*v2, n-1)
	}

	p := gammaRatio(x, n)
	bk := backend.Default()
	return p, p * (bk.Digamma(x+float64(n)) - bk.Digamma(x))
}

// useDimidation keeps near-negative-integer arguments on the exact
// dimidation path, where the product has true zeros.
func useDimidation(x float64, n int) bool {
	return 1-float64(n)-nearIntDelta < x && x < nearIntDelta &&
		gomath.Abs(x-gomath.Round(x)) < nearIntDelta
}

// gammaRatio is the generic quotient Γ(x+n)/Γ(x) via log-gamma.
func gammaRatio(x float64, n int) float64 {
	l1, s1 := gomath.Lgamma(x + float64(n))
	l2, s2 := gomath.Lgamma(x)
	return float64(s1*s2) * gomath.Exp(l1-l2)
}

func parity(n int) float64 {
	if n%2 != 0 {
		return -1
	}
	return 1
}

// Pochhammer is the rising factorial
//
//	P(x,n) = x(x+1)...(x+n-1)
func Pochhammer(x float64, n int) float64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x
	case common.Zero(x):
		return 0
	case x < 0.5-float64(n):
		return poch(gomath.Abs(x)-float64(n)+1, n) * parity(n)
	}
	return poch(x, n)
}

// RisingFactorial is a synonym for Pochhammer.
func RisingFactorial(x float64, n int) float64 { return Pochhammer(x, n) }

// FallingFactorial is
//
//	(x)_n = x(x-1)...(x-n+1) = (-1)^n · P(-x,n)
func FallingFactorial(x float64, n int) float64 {
	return Pochhammer(-x, n) * parity(n)
}

// PochhammerWithDerivative returns P(x,n) together with d/dx P(x,n).
func PochhammerWithDerivative(x float64, n int) (value, derivative float64) {
	return poch2(x, n)
}
