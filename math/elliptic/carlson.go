// Package elliptic evaluates the symmetric Carlson forms R_F, R_C, R_J,
// R_D and R_G and the classical (in)complete elliptic integrals built on
// top of them.
//
// Every form comes in up to three independent flavors: the native
// duplication-theorem evaluator, a library-backed reference (…Ref, see
// math/backend) and a direct Gauss–Legendre quadrature of the defining
// integral (…Quad). The flavors are kept deliberately independent so
// they can cross-validate each other.
package elliptic

import (
	gomath "math"

	"github.com/MohamedElashri/ostap/math/sentry"
)

// Duplication-theorem constants, Carlson 1995.
const (
	rfErrTol = 0.0025
	rfC1     = 1.0 / 24.0
	rfC2     = 0.1
	rfC3     = 3.0 / 44.0
	rfC4     = 1.0 / 14.0

	rcErrTol = 0.0012
	rcC1     = 0.3
	rcC2     = 1.0 / 7.0
	rcC3     = 0.375
	rcC4     = 9.0 / 22.0

	rdErrTol = 0.0015
	rdC1     = 3.0 / 14.0
	rdC2     = 1.0 / 6.0
	rdC3     = 9.0 / 22.0
	rdC4     = 3.0 / 26.0
	rdC5     = 0.25 * rdC3
	rdC6     = 1.5 * rdC4

	rjErrTol = 0.0015
	rjC1     = 3.0 / 14.0
	rjC2     = 1.0 / 3.0
	rjC3     = 3.0 / 22.0
	rjC4     = 3.0 / 26.0
	rjC5     = 0.75 * rjC3
	rjC6     = 1.5 * rjC4
	rjC7     = 0.5 * rjC2
	rjC8     = rjC3 + rjC3
)

// maxDuplications bounds the halving loops; convergence normally takes
// well under twenty steps.
const maxDuplications = 512

// rf evaluates R_F(x,y,z) by the duplication theorem with a fifth-order
// Taylor closing correction. Arguments must be nonnegative with at most
// one zero.
func rf(x, y, z float64) float64 {
	xt, yt, zt := x, y, z
	var ave, dx, dy, dz float64
	for i := 0; i < maxDuplications; i++ {
		sx := gomath.Sqrt(xt)
		sy := gomath.Sqrt(yt)
		sz := gomath.Sqrt(zt)
		lam := sx*(sy+sz) + sy*sz
		xt = 0.25 * (xt + lam)
		yt = 0.25 * (yt + lam)
		zt = 0.25 * (zt + lam)
		ave = (xt + yt + zt) / 3
		dx = (ave - xt) / ave
		dy = (ave - yt) / ave
		dz = (ave - zt) / ave
		if gomath.Max(gomath.Abs(dx), gomath.Max(gomath.Abs(dy), gomath.Abs(dz))) <= rfErrTol {
			break
		}
	}
	e2 := dx*dy - dz*dz
	e3 := dx * dy * dz
	return (1 + (rfC1*e2-rfC2-rfC3*e3)*e2 + rfC4*e3) / gomath.Sqrt(ave)
}

// rc evaluates R_C(x,y); the y < 0 branch is the Cauchy principal value
//
//	R_C(x,-y) = sqrt(x/(x+y))·R_C(x+y,y), y > 0.
func rc(x, y float64) float64 {
	var xt, yt, w float64
	if y > 0 {
		xt, yt, w = x, y, 1
	} else {
		xt = x - y
		yt = -y
		w = gomath.Sqrt(x) / gomath.Sqrt(xt)
	}
	var ave, s float64
	for i := 0; i < maxDuplications; i++ {
		lam := 2*gomath.Sqrt(xt)*gomath.Sqrt(yt) + yt
		xt = 0.25 * (xt + lam)
		yt = 0.25 * (yt + lam)
		ave = (xt + yt + yt) / 3
		s = (yt - ave) / ave
		if gomath.Abs(s) <= rcErrTol {
			break
		}
	}
	return w * (1 + s*s*(rcC1+s*(rcC2+s*(rcC3+s*rcC4)))) / gomath.Sqrt(ave)
}

// rd evaluates R_D(x,y,z) = R_J(x,y,z,z).
func rd(x, y, z float64) float64 {
	xt, yt, zt := x, y, z
	sum, fac := 0.0, 1.0
	var ave, dx, dy, dz float64
	for i := 0; i < maxDuplications; i++ {
		sx := gomath.Sqrt(xt)
		sy := gomath.Sqrt(yt)
		sz := gomath.Sqrt(zt)
		lam := sx*(sy+sz) + sy*sz
		sum += fac / (sz * (zt + lam))
		fac *= 0.25
		xt = 0.25 * (xt + lam)
		yt = 0.25 * (yt + lam)
		zt = 0.25 * (zt + lam)
		ave = 0.2 * (xt + yt + 3*zt)
		dx = (ave - xt) / ave
		dy = (ave - yt) / ave
		dz = (ave - zt) / ave
		if gomath.Max(gomath.Abs(dx), gomath.Max(gomath.Abs(dy), gomath.Abs(dz))) <= rdErrTol {
			break
		}
	}
	ea := dx * dy
	eb := dz * dz
	ec := ea - eb
	ed := ea - 6*eb
	ee := ed + ec + ec
	return 3*sum + fac*(1+ed*(-rdC1+rdC5*ed-rdC6*dz*ee)+
		dz*(rdC2*ee+dz*(-rdC3*ec+dz*rdC4*ea)))/(ave*gomath.Sqrt(ave))
}

// rj evaluates R_J(x,y,z,p) for p > 0.
func rj(x, y, z, p float64) float64 {
	xt, yt, zt, pt := x, y, z, p
	sum, fac := 0.0, 1.0
	var ave, dx, dy, dz, dp float64
	for i := 0; i < maxDuplications; i++ {
		sx := gomath.Sqrt(xt)
		sy := gomath.Sqrt(yt)
		sz := gomath.Sqrt(zt)
		lam := sx*(sy+sz) + sy*sz
		alpha := pt*(sx+sy+sz) + sx*sy*sz
		alpha *= alpha
		beta := pt * (pt + lam) * (pt + lam)
		sum += fac * rc(alpha, beta)
		fac *= 0.25
		xt = 0.25 * (xt + lam)
		yt = 0.25 * (yt + lam)
		zt = 0.25 * (zt + lam)
		pt = 0.25 * (pt + lam)
		ave = 0.2 * (xt + yt + zt + 2*pt)
		dx = (ave - xt) / ave
		dy = (ave - yt) / ave
		dz = (ave - zt) / ave
		dp = (ave - pt) / ave
		m := gomath.Max(gomath.Abs(dx), gomath.Abs(dy))
		m = gomath.Max(m, gomath.Max(gomath.Abs(dz), gomath.Abs(dp)))
		if m <= rjErrTol {
			break
		}
	}
	ea := dx*(dy+dz) + dy*dz
	eb := dx * dy * dz
	ec := dp * dp
	ed := ea - 3*ec
	ee := eb + 2*dp*(ea-ec)
	return 3*sum + fac*(1+ed*(-rjC1+rjC5*ed-rjC6*ee)+
		eb*(rjC7+dp*(-rjC8+dp*rjC4))+
		dp*ea*(rjC2-dp*rjC3)-rjC2*dp*ec)/(ave*gomath.Sqrt(ave))
}

func invalid(op string) float64 {
	sentry.Report(op, "argument outside the Carlson domain")
	return gomath.NaN()
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RF is the symmetric Carlson form
//
//	R_F(x,y,z) = 1/2 ∫_0^∞ [(t+x)(t+y)(t+z)]^{-1/2} dt
//
// for nonnegative x, y, z with at most one of them zero.
func RF(x, y, z float64) float64 {
	if !allFinite(x, y, z) || x < 0 || y < 0 || z < 0 {
		return invalid("elliptic.RF")
	}
	zeros := 0
	for _, v := range []float64{x, y, z} {
		if v == 0 {
			zeros++
		}
	}
	if zeros > 1 {
		return invalid("elliptic.RF")
	}
	return rf(x, y, z)
}

// RF2 is the degenerate two-argument form R_F(x,y,0).
func RF2(x, y float64) float64 { return RF(x, y, 0) }

// RC is the degenerate form R_C(x,y) = R_F(x,y,y) for x ≥ 0 and y ≠ 0.
// For y < 0 the Cauchy principal value is returned.
func RC(x, y float64) float64 {
	if !allFinite(x, y) || x < 0 || y == 0 {
		return invalid("elliptic.RC")
	}
	return rc(x, y)
}

// RD is the symmetric Carlson form
//
//	R_D(x,y,z) = R_J(x,y,z,z) = 3/2 ∫_0^∞ [(t+x)(t+y)]^{-1/2}(t+z)^{-3/2} dt
//
// for nonnegative x, y (at most one zero) and positive z.
func RD(x, y, z float64) float64 {
	if !allFinite(x, y, z) || x < 0 || y < 0 || z <= 0 || (x == 0 && y == 0) {
		return invalid("elliptic.RD")
	}
	return rd(x, y, z)
}

// RJ is the symmetric Carlson form
//
//	R_J(x,y,z,p) = 3/2 ∫_0^∞ [(t+x)(t+y)(t+z)]^{-1/2}(t+p)^{-1} dt
//
// for nonnegative x, y, z with at most one zero, and p > 0.
func RJ(x, y, z, p float64) float64 {
	if !allFinite(x, y, z, p) || x < 0 || y < 0 || z < 0 || p <= 0 {
		return invalid("elliptic.RJ")
	}
	zeros := 0
	for _, v := range []float64{x, y, z} {
		if v == 0 {
			zeros++
		}
	}
	if zeros > 1 {
		return invalid("elliptic.RJ")
	}
	return rj(x, y, z, p)
}

// RG is the symmetric Carlson form
//
//	R_G(x,y,z) = 1/4 ∫_0^∞ t [(t+x)(t+y)(t+z)]^{-1/2}
//	             (x/(t+x) + y/(t+y) + z/(t+z)) dt
//
// for nonnegative x, y, z. It is reduced to R_F and R_D through
//
//	2 R_G(x,y,z) = z R_F(x,y,z) - (x-z)(y-z)/3 · R_D(x,y,z) + sqrt(xy/z)
//
// after permuting a nonzero argument into the z slot.
func RG(x, y, z float64) float64 {
	if !allFinite(x, y, z) || x < 0 || y < 0 || z < 0 {
		return invalid("elliptic.RG")
	}
	// degenerate limits where the reduction does not apply
	zeros := 0
	for _, v := range []float64{x, y, z} {
		if v == 0 {
			zeros++
		}
	}
	switch zeros {
	case 3:
		return 0
	case 2:
		return gomath.Sqrt(x+y+z) / 2
	}
	// the reduction needs z > 0
	switch {
	case z != 0:
	case y != 0:
		y, z = z, y
	default:
		x, z = z, x
	}
	return 0.5 * (z*rf(x, y, z) -
		(x-z)*(y-z)*rd(x, y, z)/3 +
		gomath.Sqrt(x*y/z))
}

// RG2 is the degenerate two-argument form R_G(x,y,0).
func RG2(x, y float64) float64 { return RG(x, y, 0) }
