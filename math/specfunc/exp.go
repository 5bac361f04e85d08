package specfunc

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/common"
)

// logDblMin/logDblMax bracket the representable range of exp(x).
const (
	logDblMin = -708.3964185322641
	logDblMax = 709.782712893384
)

// maxCFIter bounds the adaptive continued-fraction loops.
const maxCFIter = 100000

// factorial returns n! in double precision, saturating past the
// representable range.
func factorial(n int) float64 {
	r := 1.0
	for k := 2; k <= n; k++ {
		r *= float64(k)
		if r > common.AlmostInf {
			return common.AlmostInf
		}
	}
	return r
}

// ExpN is the sum of the first N+1 terms of the exponential expansion
//
//	f = Σ_{k=0}^{N} x^k/k!
func ExpN(x float64, n int) float64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return 1 + x
	case n == 2:
		return 1 + x*(1+x*0.5)
	case n == 3:
		return 1 + x*(1+x*(0.5+x/6.0))
	case common.Zero(x):
		return 1
	}
	r, t := 1.0, 1.0
	for k := 1; k <= n; k++ {
		t *= x
		t /= float64(k)
		r += t
		if r > common.AlmostInf {
			return common.AlmostInf
		}
	}
	return r
}

// ExpRel computes (e^x − 1)/x.
func ExpRel(x float64) float64 {
	switch {
	case x < logDblMin:
		return -1.0 / x
	case x > logDblMax:
		return common.AlmostInf
	case gomath.Abs(x) < 1:
		return gomath.Expm1(x) / x
	}
	return (gomath.Exp(x) - 1) / x
}

// ExpRelN is the relative (reduced) exponent
//
//	f = N!·(e^x − Σ_{k=0}^{N-1} x^k/k!)/x^N
//
// evaluated through the generalized continued fraction for its regular
// part, with convergence checked every five steps.
func ExpRelN(x float64, n int) float64 {
	switch {
	case n == 0:
		return gomath.Exp(x)
	case n == 1:
		return ExpRel(x)
	case common.Zero(x):
		return 1
	}
	return expRelN(x, n)
}

func expRelN(x float64, n int) float64 {
	c := common.NewContinuant(1, 0, 0, 1)
	for k := 2; k <= maxCFIter; k++ {
		var a float64
		if k%2 == 0 {
			a = x * float64(k) / 2
		} else {
			a = -x * float64(n+(k-1)/2)
		}
		b := float64(k + n)
		c.Step(a, b)
		// time-to-time convergence check
		if k%5 == 0 && gomath.Abs(c.Delta()) <= 2*common.Epsilon {
			break
		}
	}
	regular := c.Value()
	// fold in the irregular part
	return 1 / (1 - x/(float64(n+1)+regular))
}

// AlphaN is the moment integral
//
//	α_n(x) = ∫_1^∞ t^n e^{-tx} dt = n!/x^{n+1} · e^{-x} · Σ_{k=0}^{n} x^k/k!
func AlphaN(n int, x float64) float64 {
	r := factorial(n)
	r /= gomath.Pow(x, float64(n+1))
	return r * gomath.Exp(-x) * ExpN(x, n)
}

// AlphaPrimeN is the moment integral
//
//	α'_n(x) = ∫_0^1 t^n e^{-tx} dt
func AlphaPrimeN(n int, x float64) float64 {
	np1 := float64(n + 1)
	if common.Zero(x) {
		return 1 / np1
	}
	return gomath.Exp(-x) * ExpRelN(x, n+1) / np1
}

// BetaN is the two-sided moment integral
//
//	β_n(x) = ∫_{-1}^{+1} t^n e^{-tx} dt
func BetaN(n int, x float64) float64 {
	if n%2 == 0 {
		return AlphaPrimeN(n, x) + AlphaPrimeN(n, -x)
	}
	return AlphaPrimeN(n, x) - AlphaPrimeN(n, -x)
}

// Sech computes 1/cosh x.
func Sech(x float64) float64 {
	if gomath.Abs(x) > 700 {
		return 0
	}
	return 2 / (gomath.Exp(x) + gomath.Exp(-x))
}
