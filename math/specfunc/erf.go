package specfunc

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/backend"
	"github.com/MohamedElashri/ostap/math/cfrac"
	"github.com/MohamedElashri/ostap/math/common"
	"github.com/MohamedElashri/ostap/math/sentry"
)

// erfcxSwitch is where the direct erfc·exp product stops being
// representable (exp(x²) overflows just past x = 26.6) and the Laplace
// continued fraction takes over.
const erfcxSwitch = 26.0

// erfcxTerms is plenty for the continued fraction at x ≥ erfcxSwitch.
const erfcxTerms = 40

// Erfcx is the scaled complementary error function
//
//	erfcx(x) = e^{x²}·erfc(x)
//
// Overflow happens for x < -26.6; the AlmostInf sentinel is returned there.
func Erfcx(x float64) float64 {
	switch {
	case x < -26.6:
		return common.AlmostInf
	case x < 0:
		return 2*gomath.Exp(x*x) - Erfcx(-x)
	case x < erfcxSwitch:
		return gomath.Exp(x*x) * gomath.Erfc(x)
	}
	// Laplace continued fraction:
	// √π·erfcx(x) = 1/(x + (1/2)/(x + (2/2)/(x + (3/2)/(x + ...))))
	a := make([]float64, erfcxTerms)
	b := make([]float64, erfcxTerms)
	a[0] = 1
	b[0] = x
	for k := 1; k < erfcxTerms; k++ {
		a[k] = float64(k) / 2
		b[k] = x
	}
	return cfrac.Generalized(a, b) / gomath.Sqrt(gomath.Pi)
}

// GaussPDF is the normal probability density.
func GaussPDF(x, mu, sigma float64) float64 {
	norm := 1 / gomath.Sqrt(2*gomath.Pi)
	dx := (x - mu) / gomath.Abs(sigma)
	return norm * gomath.Exp(-0.5*dx*dx) / gomath.Abs(sigma)
}

// GaussCDF is the normal cumulative distribution
//
//	f(x) = (1 + erf(x/√2))/2
func GaussCDF(x, mu, sigma float64) float64 {
	y := (x - mu) / (gomath.Sqrt2 * gomath.Abs(sigma))
	return 0.5 * (1 + gomath.Erf(y))
}

// GaussianIntegral computes
//
//	∫_low^high exp(-α²x² + βx) dx
func GaussianIntegral(alpha, beta, low, high float64) float64 {
	return gaussInt(alpha*alpha, beta, low, high)
}

// GaussianIntegralRight computes ∫_low^∞ exp(-α²x² + βx) dx.
func GaussianIntegralRight(alpha, beta, low float64) float64 {
	a2 := alpha * alpha
	if common.Zero(a2) {
		if beta >= 0 {
			return common.AlmostInf
		}
		return -gomath.Exp(beta*low) / beta
	}
	s := gomath.Sqrt(a2)
	u := s*low - beta/(2*s)
	return common.Saturate(0.5 * gomath.Sqrt(gomath.Pi/a2) *
		gomath.Exp(beta*beta/(4*a2)) * gomath.Erfc(u))
}

// GaussianIntegralLeft computes ∫_-∞^high exp(-α²x² + βx) dx.
func GaussianIntegralLeft(alpha, beta, high float64) float64 {
	a2 := alpha * alpha
	if common.Zero(a2) {
		if beta <= 0 {
			return common.AlmostInf
		}
		return gomath.Exp(beta*high) / beta
	}
	s := gomath.Sqrt(a2)
	u := s*high - beta/(2*s)
	return common.Saturate(0.5 * gomath.Sqrt(gomath.Pi/a2) *
		gomath.Exp(beta*beta/(4*a2)) * gomath.Erfc(-u))
}

// gaussInt is the kernel over the α² parameterization.
func gaussInt(a2, beta, low, high float64) float64 {
	if a2 < 0 {
		sentry.Report("specfunc.GaussianIntegral", "negative quadratic coefficient")
		return gomath.NaN()
	}
	if common.Zero(a2) {
		if common.Zero(beta) {
			return high - low
		}
		return (gomath.Exp(beta*high) - gomath.Exp(beta*low)) / beta
	}
	s := gomath.Sqrt(a2)
	ul := s*low - beta/(2*s)
	uh := s*high - beta/(2*s)
	return common.Saturate(0.5 * gomath.Sqrt(gomath.Pi/a2) *
		gomath.Exp(beta*beta/(4*a2)) * (gomath.Erf(uh) - gomath.Erf(ul)))
}

// StudentCDF is the cumulative Student's t-distribution with ν degrees
// of freedom, through the regularized incomplete beta function.
func StudentCDF(t, nu float64) float64 {
	anu := gomath.Abs(nu)
	xt := anu / (t*t + anu)
	value := 0.5 * backend.Default().RegIncBeta(0.5*anu, 0.5, xt)
	if t >= 0 {
		return 1 - value
	}
	return value
}
