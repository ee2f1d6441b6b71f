package schema

import (
	"fmt"
	"strconv"
)

// toInt coerces the numeric types the two stores hand us (sqlite scans
// yield int64, XML attributes arrive as strings) to int.
func toInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, &CoercionError{Want: "int", Value: val}
		}
		return i, nil
	default:
		return 0, &CoercionError{Want: "int", Value: val}
	}
}

// toFloat coerces to float64.
func toFloat(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &CoercionError{Want: "float64", Value: val}
		}
		return f, nil
	default:
		return 0, &CoercionError{Want: "float64", Value: val}
	}
}

// toString coerces to string.
func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", &CoercionError{Want: "string", Value: val}
	}
}
