package elliptic

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/common"
	"github.com/MohamedElashri/ostap/math/sentry"
)

// CompleteK is the complete elliptic integral of the first kind
//
//	K(k) = R_F(0, 1-k², 1),  |k| < 1.
func CompleteK(k float64) float64 {
	if !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.CompleteK", "modulus |k| >= 1")
		return gomath.NaN()
	}
	return rf(0, 1-k*k, 1)
}

// CompleteE is the complete elliptic integral of the second kind
//
//	E(k) = 2 R_G(0, 1-k², 1),  |k| <= 1.
func CompleteE(k float64) float64 {
	ak := gomath.Abs(k)
	switch {
	case !(ak <= 1):
		sentry.Report("elliptic.CompleteE", "modulus |k| > 1")
		return gomath.NaN()
	case common.Equal(ak, 1):
		return 1
	}
	return 2 * RG(0, 1-k*k, 1)
}

// KmE is the difference of the complete integrals
//
//	K(k) - E(k) = k²/3 · R_D(0, 1-k², 1)
//
// evaluated without cancellation between the two terms.
func KmE(k float64) float64 {
	if !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.KmE", "modulus |k| >= 1")
		return gomath.NaN()
	}
	if k == 0 {
		return 0
	}
	return k * k * rd(0, 1-k*k, 1) / 3
}

// reduce splits φ = n·π + φr with φr in (-π/2, π/2].
func reduce(phi float64) (n float64, phir float64) {
	n = gomath.Round(phi / gomath.Pi)
	return n, phi - n*gomath.Pi
}

// F is the trigonometric form of the incomplete elliptic integral of the
// first kind
//
//	F(φ,k) = ∫_0^φ dψ / sqrt(1 - k² sin²ψ)
//
// for |k| < 1, with quasi-periodicity F(φ+nπ,k) = 2nK(k) + F(φ,k)
// extending it to all real φ.
func F(phi, k float64) float64 {
	if !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.F", "modulus |k| >= 1")
		return gomath.NaN()
	}
	n, phir := reduce(phi)
	s := gomath.Sin(phir)
	c := gomath.Cos(phir)
	v := s * rf(c*c, 1-k*k*s*s, 1)
	if n == 0 {
		return v
	}
	return 2*n*CompleteK(k) + v
}

// E is the trigonometric form of the incomplete elliptic integral of the
// second kind
//
//	E(φ,k) = ∫_0^φ sqrt(1 - k² sin²ψ) dψ
//
// for |k| < 1, with E(φ+nπ,k) = 2nE(k) + E(φ,k) for all real φ.
func E(phi, k float64) float64 {
	if !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.E", "modulus |k| >= 1")
		return gomath.NaN()
	}
	n, phir := reduce(phi)
	s := gomath.Sin(phir)
	c := gomath.Cos(phir)
	d := 1 - k*k*s*s
	v := s*rf(c*c, d, 1) - k*k*s*s*s*rd(c*c, d, 1)/3
	if n == 0 {
		return v
	}
	return 2*n*CompleteE(k) + v
}

// Z is the Jacobi zeta function
//
//	Z(β,k) = E(β,k) - E(k)·F(β,k)/K(k).
func Z(beta, k float64) float64 {
	kk := CompleteK(k)
	ek := CompleteE(k)
	return E(beta, k) - ek*F(beta, k)/kk
}

// KZ is the product K(k)·Z(β,k) in the cancellation-free Carlson form
//
//	K(k)Z(β,k) = k²/3 · sinβ cosβ sqrt(α) R_J(0, 1-k², 1, α),
//	α = 1 - k² sin²β.
func KZ(beta, k float64) float64 {
	if !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.KZ", "modulus |k| >= 1")
		return gomath.NaN()
	}
	sb := gomath.Sin(beta)
	cb := gomath.Cos(beta)
	if sb == 0 || cb == 0 || k == 0 {
		return 0
	}
	alpha := 1 - k*k*sb*sb
	return k * k * sb * cb * gomath.Sqrt(alpha) * rj(0, 1-k*k, 1, alpha) / 3
}

// PI is the complete elliptic integral of the third kind
//
//	Π(α²,k) = K(k) + α²/3 · R_J(0, 1-k², 1, 1-α²)
//
// for α² < 1 and |k| < 1.
func PI(alpha2, k float64) float64 {
	v := PImK(alpha2, k)
	if gomath.IsNaN(v) {
		return v
	}
	return CompleteK(k) + v
}

// PImK is the difference Π(α²,k) - K(k), evaluated directly as
//
//	α²/3 · R_J(0, 1-k², 1, 1-α²)
//
// for α² < 1 and |k| < 1.
func PImK(alpha2, k float64) float64 {
	if !(alpha2 < 1) || !(gomath.Abs(k) < 1) {
		sentry.Report("elliptic.PImK", "parameter outside alpha2 < 1, |k| < 1")
		return gomath.NaN()
	}
	if alpha2 == 0 {
		return 0
	}
	return alpha2 * rj(0, 1-k*k, 1, 1-alpha2) / 3
}
