// Package reflectgraph is a type-graph provider backed by Go reflection.
//
// It describes struct types as field-shape data classes, driven by struct
// tags: `json` for property naming and exclusion, `jsonschema_description`
// for descriptions, and `jsonschema:"enum=...,default=..."` for enumerations
// and default literals. Pointer fields are nullable; `omitempty` marks a
// field as optional.
package reflectgraph

import (
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/checkmarble/typeschema"
	"github.com/cockroachdb/errors"
	"github.com/fatih/structs"
	json "github.com/goccy/go-json"
	"github.com/samber/lo"
)

// Describe builds the field-shape descriptor graph for a Go struct type.
//
// Example usage:
//
//	type Person struct {
//		Name string `json:"name" jsonschema_description:"Full name"`
//		Age  int    `json:"age,omitempty" jsonschema:"default=0"`
//	}
//
//	desc, err := reflectgraph.Describe[Person]()
func Describe[T any]() (*typeschema.TypeDescriptor, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, errors.Newf("cannot describe '%s': data class types must be structs", t)
	}

	d := describer{seen: make(map[reflect.Type]*typeschema.TypeDescriptor)}

	return d.describeStruct(t, t.Name()), nil
}

// DescribeWithDefaults builds the descriptor for T and seeds per-field
// default literals from the non-zero fields of an example value. Defaults
// declared in tags on those fields are overridden.
func DescribeWithDefaults[T any](example T) (*typeschema.TypeDescriptor, error) {
	desc, err := Describe[T]()
	if err != nil {
		return nil, err
	}

	for _, field := range structs.Fields(example) {
		if !field.IsExported() || field.IsZero() {
			continue
		}

		name := jsonName(field.Tag("json"), field.Name())

		for idx := range desc.Fields {
			if desc.Fields[idx].Name == name {
				desc.Fields[idx].Default = field.Value()
				desc.Fields[idx].HasDefault = true
			}
		}
	}

	return desc, nil
}

// Schema derives the JSON Schema document for a Go struct type in one call.
// A nil generator uses the default configuration.
func Schema[T any](gen *typeschema.Generator) (*typeschema.SchemaNode, error) {
	if gen == nil {
		gen = typeschema.New()
	}

	desc, err := Describe[T]()
	if err != nil {
		return nil, err
	}

	return gen.Generate(desc)
}

// describer memoizes descriptors by reflect type, so that recursive type
// graphs terminate and shared types keep one identity.
type describer struct {
	seen map[reflect.Type]*typeschema.TypeDescriptor
}

func (d describer) describeStruct(t reflect.Type, name string) *typeschema.TypeDescriptor {
	if desc, ok := d.seen[t]; ok {
		return desc
	}

	if t.Name() != "" {
		name = t.Name()
	}

	desc := &typeschema.TypeDescriptor{
		Name:  name,
		Kind:  typeschema.KindComplex,
		Shape: typeschema.ShapeFields,
	}

	// Registered before the field walk so self-references resolve to the
	// same descriptor instead of recursing forever.
	d.seen[t] = desc

	for idx := range t.NumField() {
		f := t.Field(idx)

		propName, excluded, omitempty := jsonField(f)
		enums, def, hasDef := schemaTag(f)

		nullable := f.Type.Kind() == reflect.Pointer

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		var typ *typeschema.TypeDescriptor

		if len(enums) > 0 {
			typ = typeschema.EnumOf(enumName(ft, f.Name), enums...)
		} else {
			typ = d.describe(ft, f.Name)
		}

		desc.Fields = append(desc.Fields, typeschema.Field{
			Name:        propName,
			Type:        typ,
			Exported:    f.IsExported(),
			Excluded:    excluded,
			Nullable:    nullable,
			Immutable:   !omitempty,
			Default:     def,
			HasDefault:  hasDef,
			Description: f.Tag.Get("jsonschema_description"),
		})
	}

	return desc
}

func (d describer) describe(t reflect.Type, hint string) *typeschema.TypeDescriptor {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// Special cases come before the kind switch: these are structs in Go's
	// type system but primitives in JSON Schema.
	switch {
	case t == reflect.TypeOf(time.Time{}):
		return typeschema.DateTime()
	case t == reflect.TypeOf(url.URL{}):
		return typeschema.URI()
	}

	switch t.Kind() {
	case reflect.String:
		return typeschema.String()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return typeschema.Integer()

	case reflect.Float32, reflect.Float64:
		return typeschema.Number()

	case reflect.Bool:
		return typeschema.Boolean()

	case reflect.Slice, reflect.Array:
		return typeschema.ArrayOf(d.describe(t.Elem(), hint))

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return typeschema.Any()
		}

		return typeschema.MapOf(d.describe(t.Elem(), hint))

	case reflect.Struct:
		return d.describeStruct(t, hint)

	default:
		return typeschema.Any()
	}
}

func jsonField(f reflect.StructField) (name string, excluded, omitempty bool) {
	tag := f.Tag.Get("json")

	if tag == "-" {
		return f.Name, true, false
	}

	parts := strings.Split(tag, ",")

	return jsonName(tag, f.Name), false, lo.Contains(parts[1:], "omitempty")
}

func jsonName(tag, fallback string) string {
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}

	return fallback
}

func schemaTag(f reflect.StructField) (enums []string, def any, hasDef bool) {
	for _, part := range strings.Split(f.Tag.Get("jsonschema"), ",") {
		switch {
		case strings.HasPrefix(part, "enum="):
			enums = append(enums, strings.TrimPrefix(part, "enum="))

		case strings.HasPrefix(part, "default="):
			raw := strings.TrimPrefix(part, "default=")

			var value any

			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				// Bare words are string literals.
				value = raw
			}

			def, hasDef = value, true
		}
	}

	return enums, def, hasDef
}

func enumName(t reflect.Type, fallback string) string {
	if t.Name() != "" && t.Name() != "string" {
		return t.Name()
	}

	return fallback
}
