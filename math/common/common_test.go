package common

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	assert.True(t, Zero(0))
	assert.True(t, Zero(-0.0))
	assert.False(t, Zero(1e-10))
	assert.False(t, Zero(-1e-10))
	assert.False(t, Zero(1))
}

func TestIsInt(t *testing.T) {
	assert.True(t, IsInt(3))
	assert.True(t, IsInt(-7))
	assert.True(t, IsInt(0))
	assert.False(t, IsInt(0.5))
	assert.False(t, IsInt(gomath.NaN()))
	assert.False(t, IsInt(gomath.Inf(1)))
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, AlmostInf, Saturate(gomath.MaxFloat64))
	assert.Equal(t, -AlmostInf, Saturate(-gomath.MaxFloat64))
	assert.Equal(t, 42.0, Saturate(42))
}

// The golden ratio convergents: h/k for a=[1,1,1,...].
func TestContinuantGoldenRatio(t *testing.T) {
	c := NewContinuant(0, 1, 1, 0)
	for i := 0; i < 64; i++ {
		c.Step(1, 1)
	}
	phi := (1 + gomath.Sqrt(5)) / 2
	assert.InDelta(t, phi, c.Value(), 1e-12)
}

// Rescaling must not change the convergent.
func TestContinuantRescale(t *testing.T) {
	a := NewContinuant(0, 1, 1, 0)
	b := NewContinuant(0, 1, 1, 0)
	for i := 0; i < 200; i++ {
		a.Step(1, 1e8) // forces repeated rescales
		b.Step(1, 1e8)
	}
	assert.InEpsilon(t, a.Value(), b.Value(), 1e-15)
	assert.False(t, gomath.IsInf(a.Value(), 0))
	assert.Less(t, gomath.Abs(a.Delta()), 1e-10)
}

func TestKahan(t *testing.T) {
	var k Kahan
	for i := 0; i < 10; i++ {
		k.Add(0.1)
	}
	assert.InDelta(t, 1.0, k.Sum(), 1e-15)

	// classic cancellation case: 1 + tiny - 1
	var s Kahan
	s.Add(1)
	for i := 0; i < 1000; i++ {
		s.Add(1e-18)
	}
	s.Add(-1)
	assert.InEpsilon(t, 1000e-18, s.Sum(), 1e-10)
}
