package typeschema

import "github.com/cockroachdb/errors"

// TypeBuilder crafts a constructor-shape TypeDescriptor by hand. It is the
// authoring surface for hosts that expose constructor parameters instead of
// fields, and for tests.
//
// It provides a series of methods to chain-call; errors accumulate and are
// reported by Build.
//
// Example usage:
//
//	person, err := typeschema.NewType("Person").
//		WithParam("name", typeschema.String(), typeschema.Required()).
//		WithParam("age", typeschema.Integer(), typeschema.WithDefault(0)).
//		Build()
type TypeBuilder struct {
	name   string
	params []Parameter
	err    error
}

// NewType creates a builder for a named constructor-shape type.
func NewType(name string) TypeBuilder {
	return TypeBuilder{name: name}
}

// WithParam appends one constructor parameter, in declaration order.
func (b TypeBuilder) WithParam(name string, typ *TypeDescriptor, opts ...paramOption) TypeBuilder {
	if typ == nil {
		b.err = errors.CombineErrors(b.err, errors.Newf("parameter '%s' of type '%s' has no type", name, b.name))
		return b
	}

	param := Parameter{
		Name: name,
		Type: typ,
	}

	for _, opt := range opts {
		opt(&param)
	}

	b.params = append(b.params, param)

	return b
}

// Build returns the completed descriptor, or the accumulated builder errors.
func (b TypeBuilder) Build() (*TypeDescriptor, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.name == "" {
		return nil, errors.New("a data class type must carry a name")
	}

	return &TypeDescriptor{
		Name:        b.name,
		Kind:        KindComplex,
		Shape:       ShapeConstructor,
		Constructor: &Constructor{Params: b.params},
	}, nil
}

type paramOption func(*Parameter)

// Required marks the parameter as required.
func Required() paramOption {
	return func(p *Parameter) {
		p.Required = true
	}
}

// WithDefault declares the parameter's default literal.
func WithDefault(value any) paramOption {
	return func(p *Parameter) {
		p.Default = value
		p.HasDefault = true
	}
}

// WithDescription attaches an explicit description, which takes precedence
// over any documentation comment.
func WithDescription(description string) paramOption {
	return func(p *Parameter) {
		p.Description = description
	}
}

// WithDoc attaches a raw documentation comment, used as the description when
// no explicit one is declared.
func WithDoc(doc string) paramOption {
	return func(p *Parameter) {
		p.Doc = doc
	}
}
