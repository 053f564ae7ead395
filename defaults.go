package typeschema

import (
	"github.com/checkmarble/typeschema/internal"
	"github.com/cockroachdb/errors"
)

// coerceDefault converts a property's raw default literal according to its
// classified primitive kind. A default on any other kind of property is an
// authoring error.
func coerceDefault(prop Property) (any, error) {
	value, ok := coerceLiteral(prop.Default, prop.Type)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedDefaultValueType, "property '%s'", prop.Name)
	}

	return value, nil
}

func coerceLiteral(raw any, t *TypeDescriptor) (any, bool) {
	if t == nil {
		return nil, false
	}

	switch t.Kind {
	case KindString, KindDateTime, KindURI, KindEnum:
		return internal.StringLiteral(raw)

	case KindInteger:
		return internal.IntegerLiteral(raw)

	case KindNumber:
		return internal.FloatLiteral(raw)

	case KindBoolean:
		return internal.BooleanLiteral(raw)

	case KindArray:
		items, ok := internal.SequenceLiteral(raw)
		if !ok {
			return nil, false
		}

		coerced := make([]any, len(items))

		for idx, item := range items {
			value, ok := coerceElement(item, t.Elem)
			if !ok {
				return nil, false
			}

			coerced[idx] = value
		}

		return coerced, true

	case KindMap:
		entries, ok := internal.MappingLiteral(raw)
		if !ok {
			return nil, false
		}

		coerced := make(map[string]any, len(entries))

		for key, entry := range entries {
			value, ok := coerceElement(entry, t.Elem)
			if !ok {
				return nil, false
			}

			coerced[key] = value
		}

		return coerced, true

	default:
		return nil, false
	}
}

// coerceElement coerces one element of a sequence or mapping literal. When
// the container does not declare an element type, the literal passes
// through untouched.
func coerceElement(raw any, elem *TypeDescriptor) (any, bool) {
	if elem == nil {
		return raw, true
	}

	return coerceLiteral(raw, elem)
}
