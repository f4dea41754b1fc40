package stats

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
)

// float64s checks that every element of seq is a finite real number and
// returns the elements as float64. A []float64 is returned as is, without
// copying; any other element type is converted into a new slice.
func float64s[T any](op string, seq []T) ([]float64, error) {
	if xs, ok := any(seq).([]float64); ok {
		for i, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, notReal(op, i, x)
			}
		}
		return xs, nil
	}

	xs := make([]float64, len(seq))
	for i, v := range seq {
		x, ok := toFloat64(v)
		if !ok {
			return nil, notReal(op, i, v)
		}
		xs[i] = x
	}
	return xs, nil
}

// toFloat64 converts integer and floating-point values, including named types
// with those underlying kinds. Strings, booleans, nil and non-finite floats
// are rejected.
func toFloat64(v any) (float64, bool) {
	var x float64
	switch n := v.(type) {
	case float64:
		x = n
	case float32:
		x = float64(n)
	case int:
		x = float64(n)
	case int64:
		x = float64(n)
	case int32:
		x = float64(n)
	case uint:
		x = float64(n)
	case uint64:
		x = float64(n)
	case uint32:
		x = float64(n)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			x = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			x = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			x = rv.Float()
		default:
			return 0, false
		}
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

func notReal(op string, i int, v any) error {
	return errors.Wrapf(ErrTypeMismatch, "%s: element %d (%v of type %T) is not a real number", op, i, v, v)
}
