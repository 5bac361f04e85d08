package specfunc

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func directProduct(x float64, n int) float64 {
	p := 1.0
	for k := 0; k < n; k++ {
		p *= x + float64(k)
	}
	return p
}

var pochX = []float64{-7.3, -2.5, -1.0, 0, 0.25, 1, 3.5, 12.0}

func TestPochhammerVsDirectProduct(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for _, x := range pochX {
			want := directProduct(x, n)
			got := Pochhammer(x, n)
			if want == 0 {
				assert.InDelta(t, 0, got, 1e-9, "x=%v n=%d", x, n)
				continue
			}
			assert.InEpsilon(t, want, got, 1e-9, "x=%v n=%d", x, n)
		}
	}
}

func TestPochhammerZeroArgument(t *testing.T) {
	for n := 1; n <= 30; n++ {
		assert.Equal(t, 0.0, Pochhammer(0, n), "n=%d", n)
	}
	assert.Equal(t, 1.0, Pochhammer(0, 0))
}

func TestPochhammerLargeN(t *testing.T) {
	// cross-check the dimidation path against the log-gamma quotient
	for _, n := range []int{24, 48, 90} {
		for _, x := range []float64{0.5, 1.5, 4.25} {
			l1, _ := gomath.Lgamma(x + float64(n))
			l2, _ := gomath.Lgamma(x)
			want := gomath.Exp(l1 - l2)
			assert.InEpsilon(t, want, Pochhammer(x, n), 1e-10, "x=%v n=%d", x, n)
		}
	}
}

func TestFallingFactorialIdentity(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for _, x := range pochX {
			want := Pochhammer(-x, n)
			if n%2 != 0 {
				want = -want
			}
			assert.Equal(t, want, FallingFactorial(x, n), "x=%v n=%d", x, n)
		}
	}
}

func TestFallingFactorialValues(t *testing.T) {
	// 5·4·3 = 60
	assert.InEpsilon(t, 60, FallingFactorial(5, 3), 1e-12)
	assert.InEpsilon(t, 120, FallingFactorial(5, 5), 1e-12)
}

func TestPochhammerDerivative(t *testing.T) {
	const h = 1e-6
	for n := 2; n <= 20; n++ {
		for _, x := range []float64{-2.2, -0.7, 0.3, 1.7, 6.5} {
			_, d := PochhammerWithDerivative(x, n)
			fd := (Pochhammer(x+h, n) - Pochhammer(x-h, n)) / (2 * h)
			scale := gomath.Max(1, gomath.Abs(fd))
			assert.InDelta(t, fd, d, 1e-6*scale, "x=%v n=%d", x, n)
		}
	}
}

func TestPochhammerDerivativeSmall(t *testing.T) {
	// P(x,2) = x² + x, derivative 2x + 1
	v, d := PochhammerWithDerivative(3, 2)
	assert.InEpsilon(t, 12, v, 1e-14)
	assert.InEpsilon(t, 7, d, 1e-14)

	v, d = PochhammerWithDerivative(0, 1)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1.0, d)
}
