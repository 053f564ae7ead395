package typeschema

import (
	"github.com/checkmarble/typeschema/internal"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// extractProperties normalizes a complex type's declared shape into one
// ordered property list, branching on the shape kind the provider reported.
func extractProperties(t *TypeDescriptor) ([]Property, error) {
	switch t.Shape {
	case ShapeFields:
		return fieldProperties(t), nil

	case ShapeConstructor:
		return constructorProperties(t)

	default:
		return nil, errors.Wrapf(ErrUnsupportedShape, "type '%s'", t.Name)
	}
}

// fieldProperties reads the type's instance fields in declaration order,
// skipping anything outside the public, serialized instance surface.
//
// A field is required iff it is immutable after construction and its
// declared type does not admit null.
func fieldProperties(t *TypeDescriptor) []Property {
	return lo.FilterMap(t.Fields, func(field Field, _ int) (Property, bool) {
		if !field.Exported || field.Static || field.Excluded {
			return Property{}, false
		}

		return Property{
			Name:        field.Name,
			Type:        field.Type,
			Required:    field.Immutable && !field.Nullable,
			Default:     field.Default,
			HasDefault:  field.HasDefault,
			Description: describe(field.Description, field.Doc),
		}, true
	})
}

// constructorProperties reads the parameters of the type's primary
// constructor in parameter order. The required flag is the parameter's own
// marking, not re-derived from nullability.
func constructorProperties(t *TypeDescriptor) ([]Property, error) {
	if t.Constructor == nil {
		return nil, errors.Wrapf(ErrMissingPrimaryConstructor, "type '%s'", t.Name)
	}

	return lo.Map(t.Constructor.Params, func(param Parameter, _ int) Property {
		return Property{
			Name:        param.Name,
			Type:        param.Type,
			Required:    param.Required,
			Default:     param.Default,
			HasDefault:  param.HasDefault,
			Description: describe(param.Description, param.Doc),
		}
	}), nil
}

// describe resolves a property description: an explicit description
// annotation wins over an attached documentation comment.
func describe(annotation, doc string) string {
	if annotation != "" {
		return annotation
	}

	return internal.StripDoc(doc)
}
