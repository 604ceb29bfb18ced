package scs

import "reflect"

// floatVector coerces a caller-supplied numeric slice into a []float64.
// A []float64 input is bound directly without copying; any other float-kind
// slice is converted into a fresh buffer, leaving the original untouched.
// The second return value reports whether a copy was made.
//
// Integer-kind input is rejected: fields that require float data (matrix
// values, b, c, warm-start vectors) must arrive as floats, mirroring the
// kind checks the problem builder performs before coercion.
func floatVector(op, field string, v any) ([]float64, bool, error) {
	switch x := v.(type) {
	case []float64:
		return x, false, nil
	case []float32:
		out := make([]float64, len(x))
		for i, f := range x {
			out[i] = float64(f)
		}
		return out, true, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false, shapeErr(op, field, "must be a one-dimensional slice of floats")
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		out := make([]float64, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Float()
		}
		return out, true, nil
	default:
		return nil, false, shapeErr(op, field, "must be a one-dimensional slice of floats")
	}
}

// intVector coerces a caller-supplied integer slice into a []int.
// A []int input is bound directly without copying; other integer-kind
// slices are converted. Float-kind input is rejected.
func intVector(op, field string, v any) ([]int, bool, error) {
	switch x := v.(type) {
	case []int:
		return x, false, nil
	case []int32:
		out := make([]int, len(x))
		for i, n := range x {
			out[i] = int(n)
		}
		return out, true, nil
	case []int64:
		out := make([]int, len(x))
		for i, n := range x {
			out[i] = int(n)
		}
		return out, true, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false, shapeErr(op, field, "must be a one-dimensional slice of ints")
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out := make([]int, rv.Len())
		for i := range out {
			out[i] = int(rv.Index(i).Int())
		}
		return out, true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out := make([]int, rv.Len())
		for i := range out {
			out[i] = int(rv.Index(i).Uint())
		}
		return out, true, nil
	default:
		return nil, false, shapeErr(op, field, "must be a one-dimensional slice of ints")
	}
}

// asInt extracts an integer from a scalar of any integer kind.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	default:
		return 0, false
	}
}

// asFloat extracts a float64 from a scalar of any float kind.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}
