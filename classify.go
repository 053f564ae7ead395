package typeschema

import "github.com/samber/lo"

// classify renders the subschema for one type occurrence.
//
// The classifier itself never fails: anything it does not recognize falls
// back to a bare object schema. Errors can only surface from the complex
// path, where property extraction and default coercion run.
func (s *session) classify(t *TypeDescriptor, path map[string]struct{}) (*SchemaNode, error) {
	if t == nil {
		return NewSchemaNode().Set("type", "object"), nil
	}

	switch t.Kind {
	case KindString:
		return NewSchemaNode().Set("type", "string"), nil

	case KindInteger:
		return NewSchemaNode().Set("type", "integer"), nil

	case KindNumber:
		return NewSchemaNode().Set("type", "number"), nil

	case KindBoolean:
		return NewSchemaNode().Set("type", "boolean"), nil

	case KindDateTime:
		return NewSchemaNode().Set("type", "string").Set("format", "date-time"), nil

	case KindURI:
		return NewSchemaNode().Set("type", "string").Set("format", "uri"), nil

	case KindEnum:
		return NewSchemaNode().
			Set("type", "string").
			Set("enum", lo.Map(t.EnumValues, func(v string, _ int) any { return v })), nil

	case KindArray:
		items, err := s.classify(t.Elem, path)
		if err != nil {
			return nil, err
		}

		return NewSchemaNode().Set("type", "array").Set("items", items), nil

	case KindMap:
		values, err := s.classify(t.Elem, path)
		if err != nil {
			return nil, err
		}

		return NewSchemaNode().Set("type", "object").Set("additionalProperties", values), nil

	case KindComplex:
		return s.expand(t, false, path)

	default:
		return NewSchemaNode().Set("type", "object"), nil
	}
}
