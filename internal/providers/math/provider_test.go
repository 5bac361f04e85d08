package math

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, toolID string, params map[string]interface{}) map[string]interface{} {
	t.Helper()
	p := NewProvider()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.True(t, result.Success, "tool %s failed: %v", toolID, result.Error)
	return result.Data
}

func executeFailing(t *testing.T, toolID string, params map[string]interface{}) string {
	t.Helper()
	p := NewProvider()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
	return *result.Error
}

func TestDefinition(t *testing.T) {
	p := NewProvider()
	def := p.Definition()

	assert.Equal(t, "ostap-math", def.ID)
	assert.NotEmpty(t, def.Tools)

	seen := map[string]bool{}
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.ID)
	}
	// every advertised tool must be routable
	for id := range seen {
		result, err := p.Execute(context.Background(), id, map[string]interface{}{}, nil)
		require.NoError(t, err, "tool %s", id)
		if !result.Success {
			assert.NotContains(t, *result.Error, "unknown tool", "tool %s", id)
		}
	}
}

func TestUnknownTool(t *testing.T) {
	msg := executeFailing(t, "special.nope", map[string]interface{}{})
	assert.Contains(t, msg, "unknown tool")
}

func TestPochhammerTool(t *testing.T) {
	data := execute(t, "special.pochhammer", map[string]interface{}{"x": 3.0, "n": 2})
	assert.InEpsilon(t, 12.0, data["result"].(float64), 1e-12)
	assert.InEpsilon(t, 7.0, data["derivative"].(float64), 1e-12)

	msg := executeFailing(t, "special.pochhammer", map[string]interface{}{"x": 3.0, "n": -1})
	assert.Contains(t, msg, "n parameter")
}

func TestGammaStarTool(t *testing.T) {
	data := execute(t, "special.gamma_star", map[string]interface{}{"a": 1.0, "x": 2.0})
	want := -gomath.Expm1(-2.0) / 2.0
	assert.InEpsilon(t, want, data["result"].(float64), 1e-10)
}

func TestExpRelTool(t *testing.T) {
	// default order is 1: (e^x - 1)/x
	data := execute(t, "special.exprel", map[string]interface{}{"x": 0.5})
	assert.InEpsilon(t, gomath.Expm1(0.5)/0.5, data["result"].(float64), 1e-12)
}

func TestEllipticTools(t *testing.T) {
	data := execute(t, "elliptic.complete_k", map[string]interface{}{"k": 0.0})
	assert.InEpsilon(t, gomath.Pi/2, data["result"].(float64), 1e-12)

	data = execute(t, "elliptic.rf", map[string]interface{}{"x": 1.0, "y": 1.0, "z": 1.0})
	assert.InEpsilon(t, 1.0, data["result"].(float64), 1e-12)

	data = execute(t, "elliptic.rc", map[string]interface{}{"x": 4.0, "y": 4.0})
	assert.InEpsilon(t, 0.5, data["result"].(float64), 1e-12)

	// domain violations surface as failures, not NaN payloads
	msg := executeFailing(t, "elliptic.complete_k", map[string]interface{}{"k": 1.0})
	assert.Contains(t, msg, "domain")

	msg = executeFailing(t, "elliptic.rj", map[string]interface{}{
		"x": 1.0, "y": 1.0, "z": 1.0, "p": -1.0,
	})
	assert.Contains(t, msg, "domain")
}

func TestBarrierTools(t *testing.T) {
	data := execute(t, "barrier.factor", map[string]interface{}{"x": 2.0, "l": 0})
	assert.Equal(t, 1.0, data["result"].(float64))

	data = execute(t, "barrier.absg", map[string]interface{}{"x": 1.0, "l": 1})
	assert.InEpsilon(t, gomath.Sqrt2, data["result"].(float64), 1e-12)

	msg := executeFailing(t, "barrier.factor", map[string]interface{}{"x": 1.0, "l": 1.5})
	assert.Contains(t, msg, "l parameter")
}

func TestSeriesTools(t *testing.T) {
	data := execute(t, "series.polynom", map[string]interface{}{
		"c": []interface{}{1.0, 2.0, 3.0}, "x": 2.0,
	})
	assert.InEpsilon(t, 17.0, data["result"].(float64), 1e-12)

	// T2(0.5) = -0.5
	data = execute(t, "series.chebyshev", map[string]interface{}{
		"c": []interface{}{0.0, 0.0, 1.0}, "x": 0.5,
	})
	assert.InEpsilon(t, -0.5, data["result"].(float64), 1e-12)

	// a0/2 + a1*cos(x) with c = [a0, a1, b1]
	data = execute(t, "series.fourier", map[string]interface{}{
		"c": []interface{}{2.0, 1.0, 0.0}, "x": 0.3,
	})
	assert.InEpsilon(t, 1.0+gomath.Cos(0.3), data["result"].(float64), 1e-12)

	msg := executeFailing(t, "series.chebyshev", map[string]interface{}{
		"c": []interface{}{1.0, "bad"}, "x": 0.5,
	})
	assert.Contains(t, msg, "c parameter")
}

func TestContinuedFractionTools(t *testing.T) {
	// fourth convergent of sqrt(2): [1; 2, 2, 2] = 17/12
	data := execute(t, "series.cfrac", map[string]interface{}{
		"a": []interface{}{1.0, 2.0, 2.0, 2.0},
	})
	assert.InEpsilon(t, 17.0/12.0, data["result"].(float64), 1e-12)

	data = execute(t, "series.cfrac_b", map[string]interface{}{
		"b": []interface{}{1.0, 1.0},
	})
	assert.InEpsilon(t, 0.5, data["result"].(float64), 1e-12)

	msg := executeFailing(t, "series.cfrac_general", map[string]interface{}{
		"a": []interface{}{1.0, 2.0},
		"b": []interface{}{1.0, 2.0, 3.0, 4.0},
	})
	assert.Contains(t, msg, "len(b)")
}

func TestParamCoercion(t *testing.T) {
	// integer-typed params coerce to float64
	data := execute(t, "special.erfcx", map[string]interface{}{"x": 0})
	assert.InEpsilon(t, 1.0, data["result"].(float64), 1e-12)
}
