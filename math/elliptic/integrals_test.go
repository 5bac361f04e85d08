package elliptic

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var moduli = []float64{0, 0.1, 0.5, 0.8, 0.95, 0.999}

func TestCompleteKE(t *testing.T) {
	assert.InEpsilon(t, gomath.Pi/2, CompleteK(0), 1e-12)
	assert.InEpsilon(t, gomath.Pi/2, CompleteE(0), 1e-12)
	assert.Equal(t, 1.0, CompleteE(1))
	assert.Equal(t, 1.0, CompleteE(gomath.Nextafter(1, 0)))
	assert.True(t, gomath.IsNaN(CompleteK(1)))
	assert.True(t, gomath.IsNaN(CompleteK(-1.5)))
	assert.True(t, gomath.IsNaN(CompleteE(1.5)))

	// K grows without bound as k → 1⁻, E stays bounded
	assert.Greater(t, CompleteK(1-1e-12), 10.0)
	assert.Less(t, CompleteE(1-1e-12), gomath.Pi/2)

	// even in the modulus
	for _, k := range moduli {
		assert.InDelta(t, CompleteK(k), CompleteK(-k), 1e-14, "k=%v", k)
	}
}

func TestCompleteVsBackend(t *testing.T) {
	for _, k := range moduli {
		assert.InEpsilon(t, KRef(k), CompleteK(k), 1e-8, "K k=%v", k)
		assert.InEpsilon(t, ERef(k), CompleteE(k), 1e-8, "E k=%v", k)
	}
}

func TestKmE(t *testing.T) {
	assert.Equal(t, 0.0, KmE(0))
	assert.True(t, gomath.IsNaN(KmE(1)))
	// direct difference for moderate moduli where cancellation is mild
	for _, k := range []float64{0.2, 0.5, 0.9} {
		want := CompleteK(k) - CompleteE(k)
		assert.InEpsilon(t, want, KmE(k), 1e-10, "k=%v", k)
	}
}

func TestIncompleteF(t *testing.T) {
	// F(φ,0) = φ
	for _, phi := range []float64{-1.2, 0, 0.3, 1.5, 4, 9.7} {
		assert.InDelta(t, phi, F(phi, 0), 1e-12, "phi=%v", phi)
	}
	// F(π/2,k) = K(k)
	for _, k := range moduli {
		assert.InDelta(t, CompleteK(k), F(gomath.Pi/2, k), 1e-10*CompleteK(k), "k=%v", k)
	}
	// quasi-periodicity F(φ+nπ,k) = 2nK(k) + F(φ,k)
	k := 0.7
	for _, phi := range []float64{-0.9, 0.2, 1.1} {
		for _, n := range []float64{-2, -1, 1, 3} {
			want := 2*n*CompleteK(k) + F(phi, k)
			assert.InDelta(t, want, F(phi+n*gomath.Pi, k), 1e-10, "phi=%v n=%v", phi, n)
		}
	}
	// odd in φ
	assert.InDelta(t, -F(0.8, k), F(-0.8, k), 1e-13)
	assert.True(t, gomath.IsNaN(F(0.5, 1)))
}

func TestIncompleteE(t *testing.T) {
	// E(φ,0) = φ
	for _, phi := range []float64{-2.4, 0.6, 1.5, 7} {
		assert.InDelta(t, phi, E(phi, 0), 1e-12, "phi=%v", phi)
	}
	// E(π/2,k) = E(k)
	for _, k := range moduli {
		assert.InDelta(t, CompleteE(k), E(gomath.Pi/2, k), 1e-10, "k=%v", k)
	}
	// quasi-periodicity
	k := 0.6
	for _, phi := range []float64{-0.7, 0.4, 1.3} {
		want := 2*CompleteE(k) + E(phi, k)
		assert.InDelta(t, want, E(phi+gomath.Pi, k), 1e-10, "phi=%v", phi)
	}
	assert.True(t, gomath.IsNaN(E(0.5, -1)))
}

func TestIncompleteVsBackend(t *testing.T) {
	for _, k := range []float64{0.1, 0.5, 0.9} {
		for _, phi := range []float64{0.1, 0.7, 1.3, gomath.Pi / 2} {
			assert.InEpsilon(t, FRef(phi, k), F(phi, k), 1e-8, "F phi=%v k=%v", phi, k)
			assert.InEpsilon(t, EIncRef(phi, k), E(phi, k), 1e-8, "E phi=%v k=%v", phi, k)
		}
	}
}

func TestLegendreRelation(t *testing.T) {
	// E(k)K(k') + E(k')K(k) - K(k)K(k') = π/2
	for _, k := range []float64{0.1, 0.4, 0.7, 0.95} {
		kp := gomath.Sqrt(1 - k*k)
		got := CompleteE(k)*CompleteK(kp) + CompleteE(kp)*CompleteK(k) -
			CompleteK(k)*CompleteK(kp)
		assert.InEpsilon(t, gomath.Pi/2, got, 1e-11, "k=%v", k)
	}
}

func TestJacobiZeta(t *testing.T) {
	k := 0.8
	// Z vanishes at 0 and π/2
	assert.InDelta(t, 0, Z(0, k), 1e-13)
	assert.InDelta(t, 0, Z(gomath.Pi/2, k), 1e-10)
	// KZ is the cancellation-free product form
	for _, beta := range []float64{0.2, 0.6, 1.1, 1.4} {
		for _, k := range []float64{0.3, 0.8, 0.99} {
			want := CompleteK(k) * Z(beta, k)
			assert.InDelta(t, want, KZ(beta, k), 1e-9*(1+gomath.Abs(want)),
				"beta=%v k=%v", beta, k)
		}
	}
	assert.Equal(t, 0.0, KZ(0, 0.5))
	assert.True(t, gomath.IsNaN(KZ(0.3, 1)))
}

func TestPI(t *testing.T) {
	// Π(0,k) = K(k)
	for _, k := range []float64{0, 0.4, 0.9} {
		assert.InDelta(t, CompleteK(k), PI(0, k), 1e-13, "k=%v", k)
	}
	// Π(α²,0) = π / (2·sqrt(1-α²))
	for _, a2 := range []float64{-1.5, -0.3, 0.2, 0.7} {
		want := gomath.Pi / (2 * gomath.Sqrt(1-a2))
		assert.InEpsilon(t, want, PI(a2, 0), 1e-10, "alpha2=%v", a2)
	}
	// PImK is the direct difference
	assert.InDelta(t, PI(0.5, 0.6)-CompleteK(0.6), PImK(0.5, 0.6), 1e-10)
	assert.True(t, gomath.IsNaN(PI(1, 0.5)))
	assert.True(t, gomath.IsNaN(PImK(0.5, 1)))
}

// A NaN modulus or amplitude must come back as NaN, not spin the
// underlying Carlson loops.
func TestNonFiniteModulus(t *testing.T) {
	nan := gomath.NaN()
	assert.True(t, gomath.IsNaN(CompleteK(nan)))
	assert.True(t, gomath.IsNaN(CompleteE(nan)))
	assert.True(t, gomath.IsNaN(KmE(nan)))
	assert.True(t, gomath.IsNaN(F(0.5, nan)))
	assert.True(t, gomath.IsNaN(E(0.5, nan)))
	assert.True(t, gomath.IsNaN(F(nan, 0.5)))
	assert.True(t, gomath.IsNaN(E(nan, 0.5)))
	assert.True(t, gomath.IsNaN(KZ(0.5, nan)))
	assert.True(t, gomath.IsNaN(PImK(nan, 0.5)))
	assert.True(t, gomath.IsNaN(PImK(0.5, nan)))
}
