package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// StringList normalizes a list-like value. Arrays keep their elements as text,
// strings are split on commas and trimmed, anything else becomes an empty list.
func StringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, TextValue(e))
		}
		return out
	case string:
		parts := strings.Split(t, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	default:
		return []string{}
	}
}

// NumberValue coerces v to a float64 the way a browser form value is coerced.
// present reports whether the key was in the payload at all; a missing value
// yields NaN while an explicit null yields 0. Unparseable input yields NaN.
// A one-element array coerces as its only element.
func NumberValue(v any, present bool) float64 {
	if !present {
		return math.NaN()
	}
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		return parseNumber(t)
	case []any:
		switch len(t) {
		case 0:
			return 0
		case 1:
			if _, ok := t[0].(bool); ok {
				return math.NaN()
			}
			return NumberValue(t[0], true)
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

// parseNumber accepts signed decimal literals with optional fraction and
// exponent, the literal Infinity, and unsigned 0x/0o/0b integers. Out-of-range
// decimals saturate to ±Inf.
func parseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return math.NaN()
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

func parseRadix(digits string, base int) float64 {
	var f float64
	for _, r := range digits {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case r >= 'a' && r <= 'f':
			d = int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = int(r-'A') + 10
		default:
			return math.NaN()
		}
		if d >= base {
			return math.NaN()
		}
		f = f*float64(base) + float64(d)
	}
	return f
}

// TextValue renders scalar values as text. nil and composite values become "".
func TextValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// OptionalText is TextValue that keeps null distinct from the empty string.
func OptionalText(v any) *string {
	if v == nil {
		return nil
	}
	s := TextValue(v)
	return &s
}
