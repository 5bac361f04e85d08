package math

import (
	"context"

	"github.com/MohamedElashri/ostap/internal/types"
	"github.com/MohamedElashri/ostap/math/elliptic"
)

// EllipticOps exposes the Carlson forms and elliptic integrals.
type EllipticOps struct{}

// GetTools returns elliptic integral tool definitions
func (el *EllipticOps) GetTools() []types.Tool {
	xyz := []types.Parameter{
		{Name: "x", Type: "number", Description: "First argument", Required: true},
		{Name: "y", Type: "number", Description: "Second argument", Required: true},
		{Name: "z", Type: "number", Description: "Third argument", Required: true},
	}
	modulus := []types.Parameter{
		{Name: "k", Type: "number", Description: "Elliptic modulus, |k| < 1", Required: true},
	}
	phik := []types.Parameter{
		{Name: "phi", Type: "number", Description: "Amplitude angle", Required: true},
		{Name: "k", Type: "number", Description: "Elliptic modulus, |k| < 1", Required: true},
	}

	return []types.Tool{
		{
			ID:          "elliptic.rf",
			Name:        "Carlson R_F",
			Description: "Symmetric Carlson form R_F(x,y,z)",
			Parameters:  xyz,
			Returns:     "number",
		},
		{
			ID:          "elliptic.rc",
			Name:        "Carlson R_C",
			Description: "Degenerate Carlson form R_C(x,y) = R_F(x,y,y)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "First argument", Required: true},
				{Name: "y", Type: "number", Description: "Second argument (principal value for y < 0)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "elliptic.rd",
			Name:        "Carlson R_D",
			Description: "Symmetric Carlson form R_D(x,y,z) = R_J(x,y,z,z)",
			Parameters:  xyz,
			Returns:     "number",
		},
		{
			ID:          "elliptic.rj",
			Name:        "Carlson R_J",
			Description: "Symmetric Carlson form R_J(x,y,z,p)",
			Parameters: append(append([]types.Parameter{}, xyz...), types.Parameter{
				Name: "p", Type: "number", Description: "Fourth argument, p > 0", Required: true,
			}),
			Returns: "number",
		},
		{
			ID:          "elliptic.rg",
			Name:        "Carlson R_G",
			Description: "Symmetric Carlson form R_G(x,y,z)",
			Parameters:  xyz,
			Returns:     "number",
		},
		{
			ID:          "elliptic.complete_k",
			Name:        "Complete Elliptic K",
			Description: "Complete elliptic integral of the first kind K(k)",
			Parameters:  modulus,
			Returns:     "number",
		},
		{
			ID:          "elliptic.complete_e",
			Name:        "Complete Elliptic E",
			Description: "Complete elliptic integral of the second kind E(k)",
			Parameters:  modulus,
			Returns:     "number",
		},
		{
			ID:          "elliptic.f",
			Name:        "Incomplete Elliptic F",
			Description: "Incomplete elliptic integral F(φ,k) with period reduction",
			Parameters:  phik,
			Returns:     "number",
		},
		{
			ID:          "elliptic.e",
			Name:        "Incomplete Elliptic E",
			Description: "Incomplete elliptic integral E(φ,k) with period reduction",
			Parameters:  phik,
			Returns:     "number",
		},
		{
			ID:          "elliptic.kz",
			Name:        "Jacobi Zeta Product",
			Description: "Cancellation-free product K(k)·Z(β,k)",
			Parameters: []types.Parameter{
				{Name: "beta", Type: "number", Description: "Amplitude angle", Required: true},
				{Name: "k", Type: "number", Description: "Elliptic modulus, |k| < 1", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "elliptic.pi",
			Name:        "Complete Elliptic Pi",
			Description: "Complete elliptic integral of the third kind Π(α²,k)",
			Parameters: []types.Parameter{
				{Name: "alpha2", Type: "number", Description: "Characteristic α² < 1", Required: true},
				{Name: "k", Type: "number", Description: "Elliptic modulus, |k| < 1", Required: true},
			},
			Returns: "number",
		},
	}
}

func (el *EllipticOps) xyz(params map[string]interface{}) (x, y, z float64, err *string) {
	var ok bool
	for _, p := range []struct {
		key string
		dst *float64
	}{{"x", &x}, {"y", &y}, {"z", &z}} {
		if *p.dst, ok = GetNumber(params, p.key); !ok {
			msg := p.key + " parameter required"
			return 0, 0, 0, &msg
		}
	}
	return x, y, z, nil
}

// RF evaluates the Carlson form R_F
func (el *EllipticOps) RF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, z, msg := el.xyz(params)
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.rf", elliptic.RF(x, y, z))
}

// RC evaluates the Carlson form R_C
func (el *EllipticOps) RC(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure("x parameter required")
	}
	y, ok := GetNumber(params, "y")
	if !ok {
		return Failure("y parameter required")
	}
	return Finite("elliptic.rc", elliptic.RC(x, y))
}

// RD evaluates the Carlson form R_D
func (el *EllipticOps) RD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, z, msg := el.xyz(params)
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.rd", elliptic.RD(x, y, z))
}

// RJ evaluates the Carlson form R_J
func (el *EllipticOps) RJ(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, z, msg := el.xyz(params)
	if msg != nil {
		return Failure(*msg)
	}
	p, ok := GetNumber(params, "p")
	if !ok {
		return Failure("p parameter required")
	}
	return Finite("elliptic.rj", elliptic.RJ(x, y, z, p))
}

// RG evaluates the Carlson form R_G
func (el *EllipticOps) RG(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, y, z, msg := el.xyz(params)
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.rg", elliptic.RG(x, y, z))
}

// CompleteK evaluates K(k)
func (el *EllipticOps) CompleteK(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	k, ok := GetNumber(params, "k")
	if !ok {
		return Failure("k parameter required")
	}
	return Finite("elliptic.complete_k", elliptic.CompleteK(k))
}

// CompleteE evaluates E(k)
func (el *EllipticOps) CompleteE(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	k, ok := GetNumber(params, "k")
	if !ok {
		return Failure("k parameter required")
	}
	return Finite("elliptic.complete_e", elliptic.CompleteE(k))
}

func (el *EllipticOps) phik(params map[string]interface{}, angle string) (float64, float64, *string) {
	phi, ok := GetNumber(params, angle)
	if !ok {
		msg := angle + " parameter required"
		return 0, 0, &msg
	}
	k, ok := GetNumber(params, "k")
	if !ok {
		msg := "k parameter required"
		return 0, 0, &msg
	}
	return phi, k, nil
}

// F evaluates the incomplete integral F(φ,k)
func (el *EllipticOps) F(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	phi, k, msg := el.phik(params, "phi")
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.f", elliptic.F(phi, k))
}

// E evaluates the incomplete integral E(φ,k)
func (el *EllipticOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	phi, k, msg := el.phik(params, "phi")
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.e", elliptic.E(phi, k))
}

// KZ evaluates the product K(k)·Z(β,k)
func (el *EllipticOps) KZ(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	beta, k, msg := el.phik(params, "beta")
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("elliptic.kz", elliptic.KZ(beta, k))
}

// PI evaluates the complete integral Π(α²,k)
func (el *EllipticOps) PI(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	alpha2, ok := GetNumber(params, "alpha2")
	if !ok {
		return Failure("alpha2 parameter required")
	}
	k, ok := GetNumber(params, "k")
	if !ok {
		return Failure("k parameter required")
	}
	return Finite("elliptic.pi", elliptic.PI(alpha2, k))
}
