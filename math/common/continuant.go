package common

import gomath "math"

// rescaleExp is the power of two applied to all four running values when
// either continuant grows past rescaleLimit. Rescaling numerator and
// denominator together preserves the convergent h/k exactly.
const rescaleExp = -32

var rescaleLimit = gomath.Ldexp(1, -rescaleExp) // 2^32

// Continuant carries the (h_{n-1}, k_{n-1}, h_n, k_n) state of a
// three-term continued-fraction recurrence
//
//	h_{n+1} = b·h_n + a·h_{n-1}
//	k_{n+1} = b·k_n + a·k_{n-1}
//
// The state is owned entirely by one evaluation call.
type Continuant struct {
	hm1, km1 float64
	h0, k0   float64
}

// NewContinuant seeds the recurrence state.
func NewContinuant(hm1, km1, h0, k0 float64) Continuant {
	return Continuant{hm1: hm1, km1: km1, h0: h0, k0: k0}
}

// Step advances the recurrence by one term and rescales if either running
// value left the safe magnitude band.
func (c *Continuant) Step(a, b float64) {
	hp1 := b*c.h0 + a*c.hm1
	kp1 := b*c.k0 + a*c.km1

	c.hm1, c.km1 = c.h0, c.k0
	c.h0, c.k0 = hp1, kp1

	if gomath.Abs(hp1) > rescaleLimit || gomath.Abs(kp1) > rescaleLimit {
		c.hm1 = gomath.Ldexp(c.hm1, rescaleExp)
		c.km1 = gomath.Ldexp(c.km1, rescaleExp)
		c.h0 = gomath.Ldexp(c.h0, rescaleExp)
		c.k0 = gomath.Ldexp(c.k0, rescaleExp)
	}
}

// Value returns the current convergent h_n / k_n.
func (c *Continuant) Value() float64 { return c.h0 / c.k0 }

// Delta returns the relative change between the previous and current
// convergents, used for time-to-time convergence checks.
func (c *Continuant) Delta() float64 {
	return (c.hm1/c.km1)/(c.h0/c.k0) - 1
}
