package http

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Largest magnitude a float64 holds without losing integer precision.
const maxExactInt = 1 << 53

// flexInt accepts a JSON number or a numeric string whose value is integral.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	v, ok := parseFlexNumber(b)
	if !ok || v != math.Trunc(v) || math.Abs(v) > maxExactInt {
		return &json.UnmarshalTypeError{Value: describe(b), Type: reflect.TypeOf(0)}
	}
	*n = flexInt(v)
	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	v, ok := parseFlexNumber(b)
	if !ok {
		return &json.UnmarshalTypeError{Value: describe(b), Type: reflect.TypeOf(0.0)}
	}
	*f = flexFloat(v)
	return nil
}

func parseFlexNumber(b []byte) (float64, bool) {
	raw := string(bytes.TrimSpace(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func describe(b []byte) string {
	switch b = bytes.TrimSpace(b); {
	case len(b) == 0:
		return "empty value"
	case b[0] == '"':
		return "string " + string(b)
	case b[0] == 't' || b[0] == 'f':
		return "bool"
	case b[0] == '[':
		return "array"
	case b[0] == '{':
		return "object"
	default:
		return "number " + string(b)
	}
}
