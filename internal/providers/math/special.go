package math

import (
	"context"

	"github.com/MohamedElashri/ostap/internal/types"
	"github.com/MohamedElashri/ostap/math/specfunc"
)

// SpecialOps exposes the special-function evaluators.
type SpecialOps struct{}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "special.pochhammer",
			Name:        "Pochhammer Symbol",
			Description: "Rising factorial P(x,n) = x(x+1)...(x+n-1) with derivative",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Argument", Required: true},
				{Name: "n", Type: "number", Description: "Order (nonnegative integer)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "special.gamma_star",
			Name:        "Regularized Incomplete Gamma",
			Description: "Calculate gamma-star γ*(a,x) = x^(-a)·P(a,x)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Shape parameter", Required: true},
				{Name: "x", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "special.exprel",
			Name:        "Relative Exponential",
			Description: "Calculate N!·(e^x - Σ_{k<N} x^k/k!)/x^N",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Argument", Required: true},
				{Name: "n", Type: "number", Description: "Order (default 1)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "special.erfcx",
			Name:        "Scaled Complementary Error Function",
			Description: "Calculate erfcx(x) = exp(x²)·erfc(x)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "special.gauss_cdf",
			Name:        "Normal CDF",
			Description: "Calculate the normal cumulative distribution",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Argument", Required: true},
				{Name: "mu", Type: "number", Description: "Mean (default 0)", Required: false},
				{Name: "sigma", Type: "number", Description: "Width (default 1)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "special.student_cdf",
			Name:        "Student's t CDF",
			Description: "Calculate the cumulative Student's t-distribution",
			Parameters: []types.Parameter{
				{Name: "t", Type: "number", Description: "Argument", Required: true},
				{Name: "nu", Type: "number", Description: "Degrees of freedom", Required: true},
			},
			Returns: "number",
		},
	}
}

// Pochhammer evaluates the rising factorial with its derivative
func (sp *SpecialOps) Pochhammer(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	n, ok := GetInt(params, "n")
	if !ok {
		return Failure("n parameter required (nonnegative integer)")
	}

	value, derivative := specfunc.PochhammerWithDerivative(x, n)
	return Success(map[string]interface{}{
		"result":     value,
		"derivative": derivative,
	})
}

// GammaStar evaluates the regularized incomplete gamma function
func (sp *SpecialOps) GammaStar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := GetNumber(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Finite("special.gamma_star", specfunc.GammaStar(a, x))
}

// ExpRel evaluates the relative exponential
func (sp *SpecialOps) ExpRel(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	n, ok := GetInt(params, "n")
	if !ok {
		n = 1
	}
	return Finite("special.exprel", specfunc.ExpRelN(x, n))
}

// Erfcx evaluates the scaled complementary error function
func (sp *SpecialOps) Erfcx(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	return Finite("special.erfcx", specfunc.Erfcx(x))
}

// GaussCDF evaluates the normal cumulative distribution
func (sp *SpecialOps) GaussCDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	mu, ok := GetNumber(params, "mu")
	if !ok {
		mu = 0
	}
	sigma, ok := GetNumber(params, "sigma")
	if !ok {
		sigma = 1
	}
	if sigma == 0 {
		return Failure("sigma must be nonzero")
	}
	return Finite("special.gauss_cdf", specfunc.GaussCDF(x, mu, sigma))
}

// StudentCDF evaluates the cumulative Student's t-distribution
func (sp *SpecialOps) StudentCDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	t, ok := GetNumber(params, "t")
	if !ok {
		return Failure("t parameter required")
	}
	nu, ok := GetNumber(params, "nu")
	if !ok {
		return Failure("nu parameter required")
	}
	if nu == 0 {
		return Failure("nu must be nonzero")
	}
	return Finite("special.student_cdf", specfunc.StudentCDF(t, nu))
}
