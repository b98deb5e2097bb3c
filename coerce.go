package prefkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/prefkit/pkg/enums"
	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// Coercion converts dynamic values into a preference's domain type for SetAny
// and the JSONC decoder. Failures split three ways: a type with no conversion
// path at all is StageProcessingType, a conversion that would lose
// information is StageConverting, and a textual form that does not parse is
// StageParsing. Unclassified errors returned from a coercer default to
// StageConverting in SetAny.

func typeMismatch(name string, kind Kind, value any) error {
	return validity.NewSetValueError(name, validity.StageProcessingType,
		&TypeMismatchError{Preference: name, Kind: kind, Value: value})
}

func parseFailure(name string, err error) error {
	return validity.NewSetValueError(name, validity.StageParsing, err)
}

func coerceBool(name string, value any) (bool, error) {
	switch v := value.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		b, err := cast.ToBoolE(v)
		if err != nil {
			return false, parseFailure(name, err)
		}
		return b, nil
	case json.Number:
		b, err := cast.ToBoolE(string(v))
		if err != nil {
			return false, parseFailure(name, err)
		}
		return b, nil
	default:
		return false, typeMismatch(name, KindBool, value)
	}
}

func coerceInt64(name string, value any) (int64, error) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32:
		return cast.ToInt64E(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case string:
		n, err := cast.ToInt64E(v)
		if err != nil {
			return 0, parseFailure(name, err)
		}
		return n, nil
	case json.Number:
		return numberToInt64(name, v)
	default:
		return 0, typeMismatch(name, KindInt, value)
	}
}

// numberToInt64 converts a JSON number token, accepting exponent forms such as
// 1e3 as long as the result is a whole number in range.
func numberToInt64(name string, v json.Number) (int64, error) {
	if n, err := v.Int64(); err == nil {
		return n, nil
	}
	f, err := v.Float64()
	if err != nil {
		return 0, parseFailure(name, err)
	}
	return floatToInt64(f)
}

// floatToInt64 converts exactly or not at all: fractions and values outside
// the int64 range are lossy.
func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("value %v has a fractional part", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}
	return int64(f), nil
}

func coerceFloat64(name string, value any) (float64, error) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32:
		return cast.ToFloat64E(v)
	case string:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, parseFailure(name, err)
		}
		return f, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("value %s overflows float64", string(v))
			}
			return 0, parseFailure(name, err)
		}
		return f, nil
	default:
		return 0, typeMismatch(name, KindFloat, value)
	}
}

func coerceString(name string, value any) (string, error) {
	switch v := value.(type) {
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", typeMismatch(name, KindString, value)
	}
}

func coerceDuration(name string, value any) (time.Duration, error) {
	switch v := value.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, parseFailure(name, err)
		}
		return d, nil
	case json.Number:
		n, err := numberToInt64(name, v)
		if err != nil {
			return 0, err
		}
		return time.Duration(n), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		n, err := coerceInt64(name, v)
		if err != nil {
			return 0, err
		}
		return time.Duration(n), nil
	case float32, float64:
		n, err := coerceInt64(name, v)
		if err != nil {
			return 0, err
		}
		return time.Duration(n), nil
	default:
		return 0, typeMismatch(name, KindDuration, value)
	}
}

// coerceEnum builds the coercer for one enum type: names (including flag
// combinations) parse through the descriptor, numbers convert exactly into
// the backing type.
func coerceEnum[T enums.Integer](typ *enums.Type[T]) func(name string, value any) (T, error) {
	return func(name string, value any) (T, error) {
		var zero T
		switch v := value.(type) {
		case string:
			parsed, err := typ.Parse(v)
			if err != nil {
				return zero, parseFailure(name, err)
			}
			return parsed, nil
		case json.Number:
			parsed, err := typ.Parse(string(v))
			if err != nil {
				return zero, parseFailure(name, err)
			}
			return parsed, nil
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			n, err := coerceInt64(name, v)
			if err != nil {
				return zero, err
			}
			// The int64 round-trip alone is an identity for uint64 backing
			// types, so negative input needs its own wraparound guard.
			unsigned := ^zero > zero
			if converted := T(n); int64(converted) == n && !(unsigned && n < 0) {
				return converted, nil
			}
			return zero, fmt.Errorf("value %d is out of range for enum type %q", n, typ.Name())
		default:
			return zero, typeMismatch(name, KindEnum, value)
		}
	}
}
