package internal

import "reflect"

// Literal coercion helpers. Each converts a raw default value into the
// canonical representation for one primitive kind, reporting whether the
// conversion was possible. Numeric conversions accept the types a JSON
// decoder or a Go literal can produce.

func StringLiteral(v any) (string, bool) {
	s, ok := v.(string)

	return s, ok
}

func IntegerLiteral(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		// JSON decoding yields float64 for every number.
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}

	return 0, false
}

func FloatLiteral(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}

	return 0, false
}

func BooleanLiteral(v any) (bool, bool) {
	b, ok := v.(bool)

	return b, ok
}

// SequenceLiteral flattens any slice or array value into []any.
func SequenceLiteral(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	value := reflect.ValueOf(v)

	if !value.IsValid() || (value.Kind() != reflect.Slice && value.Kind() != reflect.Array) {
		return nil, false
	}

	items := make([]any, value.Len())

	for idx := range value.Len() {
		items[idx] = value.Index(idx).Interface()
	}

	return items, true
}

// MappingLiteral flattens any string-keyed map value into map[string]any.
func MappingLiteral(v any) (map[string]any, bool) {
	if entries, ok := v.(map[string]any); ok {
		return entries, true
	}

	value := reflect.ValueOf(v)

	if !value.IsValid() || value.Kind() != reflect.Map || value.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	entries := make(map[string]any, value.Len())

	for _, key := range value.MapKeys() {
		entries[key.String()] = value.MapIndex(key).Interface()
	}

	return entries, true
}
