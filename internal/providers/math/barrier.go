package math

import (
	"context"

	"github.com/MohamedElashri/ostap/internal/types"
	"github.com/MohamedElashri/ostap/math/barrier"
)

// BarrierOps exposes the Blatt-Weisskopf barrier factors.
type BarrierOps struct{}

// GetTools returns barrier factor tool definitions
func (b *BarrierOps) GetTools() []types.Tool {
	params := []types.Parameter{
		{Name: "x", Type: "number", Description: "Scaled relative momentum", Required: true},
		{Name: "l", Type: "number", Description: "Orbital momentum (nonnegative integer)", Required: true},
	}
	return []types.Tool{
		{
			ID:          "barrier.factor",
			Name:        "Barrier Factor",
			Description: "Blatt-Weisskopf centrifugal-barrier factor x^l/|g_l(x)|",
			Parameters:  params,
			Returns:     "number",
		},
		{
			ID:          "barrier.absg",
			Name:        "Barrier Polynomial Modulus",
			Description: "Modulus |g_l(x)| of the barrier polynomial",
			Parameters:  params,
			Returns:     "number",
		},
	}
}

func (b *BarrierOps) args(params map[string]interface{}) (float64, int, *string) {
	x, ok := GetNumber(params, "x")
	if !ok {
		msg := "x parameter required"
		return 0, 0, &msg
	}
	l, ok := GetInt(params, "l")
	if !ok {
		msg := "l parameter required (nonnegative integer)"
		return 0, 0, &msg
	}
	return x, l, nil
}

// Factor evaluates the barrier factor
func (b *BarrierOps) Factor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, l, msg := b.args(params)
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("barrier.factor", barrier.Factor(x, l))
}

// AbsG evaluates the barrier polynomial modulus
func (b *BarrierOps) AbsG(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, l, msg := b.args(params)
	if msg != nil {
		return Failure(*msg)
	}
	return Finite("barrier.absg", barrier.AbsG(x, l))
}
