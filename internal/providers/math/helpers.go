package math

import (
	"fmt"
	gomath "math"

	"github.com/MohamedElashri/ostap/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetNumbers extracts an array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}

	numbers := make([]float64, 0, len(arr))
	for _, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, false
		}
	}
	return numbers, true
}

// GetInt extracts a nonnegative integer from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	v, ok := GetNumber(params, key)
	if !ok || v != gomath.Trunc(v) || v < 0 {
		return 0, false
	}
	return int(v), true
}

// Finite converts a numeric outcome into a result, mapping NaN and Inf
// to a failure: the math core signals domain violations through NaN.
func Finite(tool string, result float64) (*types.Result, error) {
	if gomath.IsNaN(result) || gomath.IsInf(result, 0) {
		return Failure(fmt.Sprintf("%s: argument outside the function domain", tool))
	}
	return Success(map[string]interface{}{"result": result})
}
