package common

// Kahan is a compensated accumulator. It recovers most of the precision
// the evaluators would get from extended-precision intermediates.
type Kahan struct {
	sum, c float64
}

// Add folds x into the running sum, carrying the rounding compensation.
func (k *Kahan) Add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Sum returns the compensated total.
func (k *Kahan) Sum() float64 { return k.sum }
