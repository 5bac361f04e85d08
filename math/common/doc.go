// Package common provides the accumulation primitives shared by the
// iterative special-function evaluators.
//
// The two building blocks are:
//   - Continuant: the numerator/denominator state of a three-term
//     continued-fraction recurrence, with joint power-of-two rescaling
//     so long products never overflow while the convergent h/k stays
//     exact in the ideal-arithmetic sense.
//   - Kahan: a compensated accumulator standing in for the extended
//     precision the evaluators would otherwise need.
//
// All constants here are fixed at process start and read-only.
package common
