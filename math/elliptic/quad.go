package elliptic

import (
	gomath "math"

	"gonum.org/v1/gonum/integrate/quad"
)

// quadNodes is enough Gauss–Legendre nodes for ~1e-10 accuracy on the
// transformed integrands below, which are smooth on [0,1].
const quadNodes = 220

// carlsonQuad integrates kernel(t) over t ∈ [0,∞) under the substitution
// t = (u/(1-u))², which maps [0,1) onto the half line and makes every
// Carlson integrand smooth at both endpoints.
func carlsonQuad(kernel func(t float64) float64) float64 {
	f := func(u float64) float64 {
		r := u / (1 - u)
		t := r * r
		jac := 2 * u / ((1 - u) * (1 - u) * (1 - u))
		return kernel(t) * jac
	}
	return quad.Fixed(f, 0, 1, quadNodes, quad.Legendre{}, 0)
}

// RFQuad evaluates R_F(x,y,z) by direct quadrature of the defining
// integral. Cross-validation flavor; the native RF is the fast path.
func RFQuad(x, y, z float64) float64 {
	return 0.5 * carlsonQuad(func(t float64) float64 {
		return 1 / gomath.Sqrt((t+x)*(t+y)*(t+z))
	})
}

// RCQuad evaluates R_C(x,y) by direct quadrature (x ≥ 0, y > 0).
func RCQuad(x, y float64) float64 {
	return 0.5 * carlsonQuad(func(t float64) float64 {
		return 1 / (gomath.Sqrt(t+x) * (t + y))
	})
}

// RDQuad evaluates R_D(x,y,z) by direct quadrature.
func RDQuad(x, y, z float64) float64 {
	return 1.5 * carlsonQuad(func(t float64) float64 {
		tz := t + z
		return 1 / (gomath.Sqrt((t+x)*(t+y)) * tz * gomath.Sqrt(tz))
	})
}

// RJQuad evaluates R_J(x,y,z,p) by direct quadrature (p > 0).
func RJQuad(x, y, z, p float64) float64 {
	return 1.5 * carlsonQuad(func(t float64) float64 {
		return 1 / (gomath.Sqrt((t+x)*(t+y)*(t+z)) * (t + p))
	})
}
