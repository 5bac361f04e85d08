package math

import (
	"context"

	"github.com/MohamedElashri/ostap/internal/types"
	"github.com/MohamedElashri/ostap/math/cfrac"
	"github.com/MohamedElashri/ostap/math/clenshaw"
)

// SeriesOps exposes the series summation and continued-fraction
// evaluators.
type SeriesOps struct{}

// GetTools returns series evaluation tool definitions
func (se *SeriesOps) GetTools() []types.Tool {
	coeffs := func(desc string) []types.Parameter {
		return []types.Parameter{
			{Name: "c", Type: "array", Description: desc, Required: true},
			{Name: "x", Type: "number", Description: "Evaluation point", Required: true},
		}
	}
	return []types.Tool{
		{
			ID:          "series.polynom",
			Name:        "Polynomial",
			Description: "Evaluate Σ c[k]·x^k (c[0] the constant term) by Horner's scheme",
			Parameters:  coeffs("Coefficients, constant term first"),
			Returns:     "number",
		},
		{
			ID:          "series.chebyshev",
			Name:        "Chebyshev Series",
			Description: "Evaluate Σ c[k]·T_k(x) by the backward recurrence",
			Parameters:  coeffs("Chebyshev coefficients"),
			Returns:     "number",
		},
		{
			ID:          "series.legendre",
			Name:        "Legendre Series",
			Description: "Evaluate Σ c[k]·P_k(x) by the backward recurrence",
			Parameters:  coeffs("Legendre coefficients"),
			Returns:     "number",
		},
		{
			ID:          "series.hermite",
			Name:        "Hermite Series",
			Description: "Evaluate Σ c[k]·He_k(x) over the probabilist Hermite basis",
			Parameters:  coeffs("Hermite coefficients"),
			Returns:     "number",
		},
		{
			ID:          "series.fourier",
			Name:        "Fourier Series",
			Description: "Evaluate a₀/2 + Σ a_k·cos(kx) + b_k·sin(kx), coefficients [a₀,a₁,b₁,...]",
			Parameters:  coeffs("Interleaved Fourier coefficients"),
			Returns:     "number",
		},
		{
			ID:          "series.cfrac",
			Name:        "Simple Continued Fraction",
			Description: "Evaluate a₀ + 1/(a₁ + 1/(a₂ + ...))",
			Parameters: []types.Parameter{
				{Name: "a", Type: "array", Description: "Partial denominators", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "series.cfrac_b",
			Name:        "B-form Continued Fraction",
			Description: "Evaluate b₀/(1 + b₁/(1 + ...))",
			Parameters: []types.Parameter{
				{Name: "b", Type: "array", Description: "Partial numerators", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "series.cfrac_general",
			Name:        "Generalized Continued Fraction",
			Description: "Evaluate [b₀ +] a₁/(b₁ + a₂/(b₂ + ...)); len(b) = len(a) or len(a)+1",
			Parameters: []types.Parameter{
				{Name: "a", Type: "array", Description: "Partial numerators", Required: true},
				{Name: "b", Type: "array", Description: "Partial denominators", Required: true},
			},
			Returns: "number",
		},
	}
}

func (se *SeriesOps) coeffSeries(params map[string]interface{}, tool string, eval func(c []float64, x float64) float64) (*types.Result, error) {
	c, ok := GetNumbers(params, "c")
	if !ok {
		return Failure("c parameter required (array of numbers)")
	}
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Finite(tool, eval(c, x))
}

// Polynom evaluates a polynomial by Horner's scheme
func (se *SeriesOps) Polynom(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return se.coeffSeries(params, "series.polynom", clenshaw.Polynom)
}

// Chebyshev evaluates a Chebyshev series
func (se *SeriesOps) Chebyshev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return se.coeffSeries(params, "series.chebyshev", clenshaw.Chebyshev)
}

// Legendre evaluates a Legendre series
func (se *SeriesOps) Legendre(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return se.coeffSeries(params, "series.legendre", clenshaw.Legendre)
}

// Hermite evaluates a probabilist Hermite series
func (se *SeriesOps) Hermite(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return se.coeffSeries(params, "series.hermite", clenshaw.Hermite)
}

// Fourier evaluates a mixed Fourier series
func (se *SeriesOps) Fourier(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return se.coeffSeries(params, "series.fourier", clenshaw.Fourier)
}

// CFrac evaluates a simple continued fraction
func (se *SeriesOps) CFrac(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := GetNumbers(params, "a")
	if !ok {
		return Failure("a parameter required (array of numbers)")
	}
	return Finite("series.cfrac", cfrac.Simple(a))
}

// CFracB evaluates a b-form continued fraction
func (se *SeriesOps) CFracB(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	b, ok := GetNumbers(params, "b")
	if !ok {
		return Failure("b parameter required (array of numbers)")
	}
	return Finite("series.cfrac_b", cfrac.SimpleB(b))
}

// CFracGeneral evaluates a generalized continued fraction
func (se *SeriesOps) CFracGeneral(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := GetNumbers(params, "a")
	if !ok {
		return Failure("a parameter required (array of numbers)")
	}
	b, ok := GetNumbers(params, "b")
	if !ok {
		return Failure("b parameter required (array of numbers)")
	}
	if len(b) != len(a) && len(b) != len(a)+1 {
		return Failure("len(b) must be len(a) or len(a)+1")
	}
	return Finite("series.cfrac_general", cfrac.Generalized(a, b))
}
