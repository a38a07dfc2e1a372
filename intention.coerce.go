package intention

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coerce recursively normalizes a JSON-compatible value. Numeric-looking
// string leaves become numbers; all other strings are whitespace-trimmed;
// mappings and sequences keep their shape with each element coerced. Coerce
// is pure, total and idempotent: a second pass changes nothing.
func Coerce(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = Coerce(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Coerce(elem)
		}
		return out
	case string:
		return coerceString(v)
	case json.Number:
		return normalizeNumber(v)
	default:
		return value
	}
}

// coerceString converts a numeric-looking string to a number. Strings
// containing a dot get a single float parse attempt; anything else a single
// integer parse attempt. Either failure falls through to the trimmed string:
// "12.3.4" fails the float parse and stays a string, there is no second
// attempt or partial parse.
func coerceString(s string) any {
	trimmed := strings.TrimSpace(s)
	if strings.Contains(trimmed, ".") {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
		return trimmed
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	return trimmed
}

// normalizeNumber resolves a json.Number to int64 or float64. Integer
// tokens from the wire stay integers so exact-type schema checks see the
// same distinction the JSON carried.
func normalizeNumber(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return s
}
