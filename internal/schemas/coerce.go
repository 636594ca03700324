package schemas

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// coerce converts v to the Go value used for kind: string, int64, float64 or
// bool. Lax mode also accepts numbers and booleans written as strings.
func coerce(kind Kind, v interface{}, lax bool) (interface{}, bool) {
	switch kind {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindInteger:
		return toInt64(v, lax)
	case KindNumber:
		return toFloat64(v, lax)
	case KindBoolean:
		return toBool(v, lax)
	}
	return nil, false
}

func toInt64(v interface{}, lax bool) (int64, bool) {
	switch n := v.(type) {
	case bool:
		return 0, false
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case primitive.Decimal128:
		f, ok := decimalToFloat(n)
		if !ok {
			return 0, false
		}
		return integral(f)
	case string:
		if !lax {
			return 0, false
		}
		return parseInt(strings.TrimSpace(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return integral(rv.Float())
	}
	return 0, false
}

func toFloat64(v interface{}, lax bool) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case bool:
		return 0, false
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case primitive.Decimal128:
		parsed, ok := decimalToFloat(n)
		if !ok {
			return 0, false
		}
		f = parsed
	case string:
		if !lax {
			return 0, false
		}
		parsed, err := cast.ToFloat64E(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toBool(v interface{}, lax bool) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if !lax {
		return false, false
	}
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "y", "on":
			return true, true
		case "no", "n", "off":
			return false, true
		}
		b, err := cast.ToBoolE(strings.TrimSpace(s))
		if err != nil {
			return false, false
		}
		return b, true
	}
	if i, ok := toInt64(v, false); ok && (i == 0 || i == 1) {
		return i == 1, true
	}
	return false, false
}

// parseInt accepts decimal integer strings, optionally with a zero
// fraction such as "42.0". Exponents are rejected.
func parseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return saturate(strings.HasPrefix(s, "-")), true
	}
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || whole == "" || whole == "-" || whole == "+" || strings.Trim(frac, "0") != "" {
		return 0, false
	}
	return parseInt(whole)
}

// integral converts whole floats. Values beyond the int64 range saturate so
// range rules report them.
func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return saturate(f < 0), true
	}
	return int64(f), true
}

func saturate(negative bool) int64 {
	if negative {
		return math.MinInt64
	}
	return math.MaxInt64
}

func decimalToFloat(d primitive.Decimal128) (float64, bool) {
	f, err := cast.ToFloat64E(d.String())
	if err != nil {
		return 0, false
	}
	return f, true
}
