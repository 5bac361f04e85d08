// Package math exposes the numeric core as a tool provider: every
// operation is a described, individually callable tool.
package math

import (
	"context"
	"fmt"

	"github.com/MohamedElashri/ostap/internal/types"
)

// Provider implements the special-function tool surface
type Provider struct {
	special  *SpecialOps
	elliptic *EllipticOps
	barrier  *BarrierOps
	series   *SeriesOps
}

// NewProvider creates a modular math provider
func NewProvider() *Provider {
	return &Provider{
		special:  &SpecialOps{},
		elliptic: &EllipticOps{},
		barrier:  &BarrierOps{},
		series:   &SeriesOps{},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.special.GetTools()...)
	tools = append(tools, m.elliptic.GetTools()...)
	tools = append(tools, m.barrier.GetTools()...)
	tools = append(tools, m.series.GetTools()...)

	return types.Service{
		ID:          "ostap-math",
		Name:        "Special Function Service",
		Description: "Special functions and relativistic-kinematics numerics (Pochhammer, incomplete gamma, Carlson elliptic forms, barrier factors)",
		Category:    types.CategorySpecial,
		Capabilities: []string{
			"special",
			"elliptic",
			"barrier",
			"series",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Special functions
	case "special.pochhammer":
		return m.special.Pochhammer(ctx, params, appCtx)
	case "special.gamma_star":
		return m.special.GammaStar(ctx, params, appCtx)
	case "special.exprel":
		return m.special.ExpRel(ctx, params, appCtx)
	case "special.erfcx":
		return m.special.Erfcx(ctx, params, appCtx)
	case "special.gauss_cdf":
		return m.special.GaussCDF(ctx, params, appCtx)
	case "special.student_cdf":
		return m.special.StudentCDF(ctx, params, appCtx)

	// Carlson forms and elliptic integrals
	case "elliptic.rf":
		return m.elliptic.RF(ctx, params, appCtx)
	case "elliptic.rc":
		return m.elliptic.RC(ctx, params, appCtx)
	case "elliptic.rd":
		return m.elliptic.RD(ctx, params, appCtx)
	case "elliptic.rj":
		return m.elliptic.RJ(ctx, params, appCtx)
	case "elliptic.rg":
		return m.elliptic.RG(ctx, params, appCtx)
	case "elliptic.complete_k":
		return m.elliptic.CompleteK(ctx, params, appCtx)
	case "elliptic.complete_e":
		return m.elliptic.CompleteE(ctx, params, appCtx)
	case "elliptic.f":
		return m.elliptic.F(ctx, params, appCtx)
	case "elliptic.e":
		return m.elliptic.E(ctx, params, appCtx)
	case "elliptic.kz":
		return m.elliptic.KZ(ctx, params, appCtx)
	case "elliptic.pi":
		return m.elliptic.PI(ctx, params, appCtx)

	// Barrier factors
	case "barrier.factor":
		return m.barrier.Factor(ctx, params, appCtx)
	case "barrier.absg":
		return m.barrier.AbsG(ctx, params, appCtx)

	// Series sums and continued fractions
	case "series.polynom":
		return m.series.Polynom(ctx, params, appCtx)
	case "series.chebyshev":
		return m.series.Chebyshev(ctx, params, appCtx)
	case "series.legendre":
		return m.series.Legendre(ctx, params, appCtx)
	case "series.hermite":
		return m.series.Hermite(ctx, params, appCtx)
	case "series.fourier":
		return m.series.Fourier(ctx, params, appCtx)
	case "series.cfrac":
		return m.series.CFrac(ctx, params, appCtx)
	case "series.cfrac_b":
		return m.series.CFracB(ctx, params, appCtx)
	case "series.cfrac_general":
		return m.series.CFracGeneral(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
