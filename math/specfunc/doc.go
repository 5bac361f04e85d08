// Package specfunc implements the scalar special functions of the
// numeric core: the Pochhammer (rising factorial) family with
// derivatives, the regularized incomplete gamma function gamma-star,
// the partial/relative exponential family, Kummer's function for
// integer parameters, and a handful of distribution helpers.
//
// Error contract: arguments outside a routine's mathematical domain
// yield NaN (reported through math/sentry); iteration caps make every
// series terminate with its best available value; saturation uses the
// common.AlmostInf sentinel, never IEEE Inf.
package specfunc
