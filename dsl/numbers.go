package dsl

import (
	"context"
	"math"
	"strconv"

	camara "github.com/camara-go/camara"
)

// jsonNumber matches encoding/json.Number and go-json's Number alike.
type jsonNumber interface {
	String() string
	Float64() (float64, error)
	Int64() (int64, error)
}

// toInt64 reads an integer from a wire value. JSON numbers are accepted when
// integral; numeric strings only when ExactTypes is off.
func toInt64(ctx context.Context, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, camara.Fail(camara.CodeTooBig, map[string]any{"max": float64(math.MaxInt64)})
		}
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, camara.Fail(camara.CodeTooBig, map[string]any{"max": float64(math.MaxInt64)})
		}
		return int64(n), nil
	case float64:
		return integralFloat(n, v)
	case float32:
		return integralFloat(float64(n), v)
	case jsonNumber:
		return parseIntText(n.String(), v)
	case string:
		if camara.CoerceOptFrom(ctx).ExactTypes {
			return 0, camara.TypeMismatch("integer", v)
		}
		return parseIntText(n, v)
	}
	return 0, camara.TypeMismatch("integer", v)
}

func parseIntText(s string, orig any) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, camara.TypeMismatch("integer", orig)
	}
	return integralFloat(f, orig)
}

func integralFloat(f float64, orig any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, camara.TypeMismatch("integer", orig)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, camara.TypeMismatch("integer", orig)
	}
	return int64(f), nil
}

// toFloat64 reads any JSON number; numeric strings only when ExactTypes is off.
func toFloat64(ctx context.Context, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case jsonNumber:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, camara.TypeMismatch("number", v)
		}
		return f, nil
	case string:
		if camara.CoerceOptFrom(ctx).ExactTypes {
			return 0, camara.TypeMismatch("number", v)
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, camara.TypeMismatch("number", v)
		}
		return f, nil
	}
	return 0, camara.TypeMismatch("number", v)
}
