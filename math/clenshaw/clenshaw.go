// Package clenshaw sums series over recursively defined basis families
// by backward three-term recurrence, without materializing the basis
// function values.
//
// A basis is described by its recurrence
//
//	F_{k+1}(x) = α(k,x)·F_k(x) + β(k,x)·F_{k-1}(x)
//
// together with the two seeds F₀(x) and F₁(x). Sum evaluates Σ cₖFₖ(x)
// for arbitrary coefficients; Term evaluates a single Fₙ(x), which is
// how the barrier-factor polynomial recurrence reuses the engine.
package clenshaw

import (
	gomath "math"
)

// Coeff produces the recurrence coefficient for order k at point x.
type Coeff func(k int, x float64) float64

// Seed produces a closing (seed) basis value at point x.
type Seed func(x float64) float64

// Sum evaluates Σ_{k=0}^{len(c)-1} c[k]·F_k(x) for the basis defined by
// alpha, beta and the seeds f0, f1. An empty coefficient list yields 0.
func Sum(c []float64, x float64, alpha, beta Coeff, f0, f1 Seed) float64 {
	n := len(c) - 1
	if n < 0 {
		return 0
	}
	return run(x, n, func(k int) float64 { return c[k] }, alpha, beta, f0, f1)
}

// Term evaluates the single basis value F_n(x): the summation with a
// unit coefficient at order n.
func Term(x float64, n int, alpha, beta Coeff, f0, f1 Seed) float64 {
	return run(x, n, func(k int) float64 {
		if k == n {
			return 1
		}
		return 0
	}, alpha, beta, f0, f1)
}

// run is the backward recurrence shared by Sum and Term:
//
//	b_k = c_k + α(k,x)·b_{k+1} + β(k+1,x)·b_{k+2}
//
// descending from k = n to 1, closing with
//
//	S = F₀(x)·(c₀ + β(1,x)·b₂) + F₁(x)·b₁.
func run(x float64, n int, coeff func(k int) float64, alpha, beta Coeff, f0, f1 Seed) float64 {
	if n == 0 {
		return coeff(0) * f0(x)
	}
	var b1, b2 float64
	for k := n; k >= 1; k-- {
		b0 := coeff(k) + alpha(k, x)*b1 + beta(k+1, x)*b2
		b1, b2 = b0, b1
	}
	return f0(x)*(coeff(0)+beta(1, x)*b2) + f1(x)*b1
}

// Polynom evaluates Σ c[k]·x^k with c[0] the constant term, by Horner's
// scheme.
func Polynom(c []float64, x float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}

// PolynomHigh evaluates the opposite Horner convention: c[0] is the
// highest-order coefficient, c[len-1] the constant term.
func PolynomHigh(c []float64, x float64) float64 {
	var r float64
	for _, ci := range c {
		r = r*x + ci
	}
	return r
}

// Chebyshev evaluates Σ c[k]·T_k(x).
func Chebyshev(c []float64, x float64) float64 {
	return Sum(c, x,
		func(_ int, t float64) float64 { return 2 * t },
		func(_ int, _ float64) float64 { return -1 },
		func(_ float64) float64 { return 1 },
		func(t float64) float64 { return t },
	)
}

// Legendre evaluates Σ c[k]·P_k(x).
func Legendre(c []float64, x float64) float64 {
	return Sum(c, x,
		func(k int, t float64) float64 { return float64(2*k+1) * t / float64(k+1) },
		func(k int, _ float64) float64 { return -float64(k) / float64(k+1) },
		func(_ float64) float64 { return 1 },
		func(t float64) float64 { return t },
	)
}

// Hermite evaluates Σ c[k]·He_k(x) over the probabilist Hermite basis
// He_{k+1} = x·He_k − k·He_{k-1}.
func Hermite(c []float64, x float64) float64 {
	return Sum(c, x,
		func(_ int, t float64) float64 { return t },
		func(k int, _ float64) float64 { return -float64(k) },
		func(_ float64) float64 { return 1 },
		func(t float64) float64 { return t },
	)
}

// Cosine evaluates Σ c[k]·cos(kx), c[0] being the constant (k = 0) term.
func Cosine(c []float64, x float64) float64 {
	cx := gomath.Cos(x)
	return Sum(c, x,
		func(_ int, _ float64) float64 { return 2 * cx },
		func(_ int, _ float64) float64 { return -1 },
		func(_ float64) float64 { return 1 },
		func(_ float64) float64 { return cx },
	)
}

// Sine evaluates Σ_{k=1}^{len(c)} c[k-1]·sin(kx).
func Sine(c []float64, x float64) float64 {
	cx := gomath.Cos(x)
	sx := gomath.Sin(x)
	return Sum(c, x,
		func(_ int, _ float64) float64 { return 2 * cx },
		func(_ int, _ float64) float64 { return -1 },
		func(_ float64) float64 { return sx },
		func(_ float64) float64 { return 2 * sx * cx }, // sin 2x
	)
}

// Fourier evaluates the mixed series
//
//	a₀/2 + Σ_{k≥1} a_k·cos(kx) + b_k·sin(kx)
//
// with coefficients interleaved as [a₀, a₁, b₁, a₂, b₂, ...]. An
// unpaired trailing coefficient is the last aₙ with bₙ = 0.
func Fourier(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	n := len(c) / 2
	ac := make([]float64, n+1)
	bc := make([]float64, n)
	ac[0] = c[0] / 2
	for k := 1; k <= n; k++ {
		ac[k] = c[2*k-1]
		if 2*k < len(c) {
			bc[k-1] = c[2*k]
		}
	}
	return Cosine(ac, x) + Sine(bc, x)
}
