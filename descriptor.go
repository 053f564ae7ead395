package typeschema

// Kind is the JSON Schema primitive category of a type.
type Kind int

const (
	// KindAny is the universal top type. It is also the fallback for any
	// shape the classifier does not recognize.
	KindAny Kind = iota
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindDateTime
	KindURI
	KindEnum
	KindArray
	KindMap
	KindComplex
)

// ShapeKind identifies which of the two recognized source-level patterns a
// complex type follows.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	// ShapeFields reads properties from the type's declared instance fields.
	ShapeFields
	// ShapeConstructor reads properties from the parameters of the type's
	// primary constructor.
	ShapeConstructor
)

// TypeDescriptor is a read-only structural view of one type in the host type
// system, as supplied by a type-graph provider.
//
// Identity is by Name: two descriptors carrying the same name denote the
// same type for memoization and cycle detection, so providers must keep
// names unique within one type graph.
type TypeDescriptor struct {
	Name string
	Kind Kind

	// Elem is the element type of an array or the value type of a map.
	Elem *TypeDescriptor

	// EnumValues lists an enumeration's constant names in declaration order.
	EnumValues []string

	// Shape, Fields and Constructor are only meaningful for KindComplex.
	Shape       ShapeKind
	Fields      []Field
	Constructor *Constructor
}

// Field is one declared instance field of a field-shape complex type.
type Field struct {
	Name string
	Type *TypeDescriptor

	// Exported is false for fields outside the public instance surface.
	Exported bool
	// Static marks a field that belongs to the type rather than instances.
	Static bool
	// Excluded marks a field whose serialization directive removes it from
	// both the read and the write paths.
	Excluded bool

	// Nullable is true when the declared field type admits null.
	Nullable bool
	// Immutable is true when the field cannot change after construction.
	Immutable bool

	// Default carries the field's declared default literal, when HasDefault
	// is set.
	Default    any
	HasDefault bool

	// Description is the literal argument of a description annotation. Doc
	// is the raw documentation comment attached to the field, delimiters
	// included; it is only consulted when Description is empty.
	Description string
	Doc         string
}

// Constructor is the primary constructor of a constructor-shape type.
type Constructor struct {
	Params []Parameter
}

// Parameter is one parameter of a primary constructor.
type Parameter struct {
	Name string
	Type *TypeDescriptor

	// Required is the parameter's own required/optional marking. Unlike
	// fields, it is not derived from nullability.
	Required bool

	Default    any
	HasDefault bool

	Description string
	Doc         string
}

// Property is the normalized view of one schema property, produced by the
// property extractor from either shape.
type Property struct {
	Name     string
	Type     *TypeDescriptor
	Required bool

	Default    any
	HasDefault bool

	Description string
}

// Shorthand constructors for descriptor graphs built by hand, typically
// alongside NewType for constructor-shape declarations.

func String() *TypeDescriptor { return &TypeDescriptor{Name: "string", Kind: KindString} }

func Integer() *TypeDescriptor { return &TypeDescriptor{Name: "integer", Kind: KindInteger} }

func Number() *TypeDescriptor { return &TypeDescriptor{Name: "number", Kind: KindNumber} }

func Boolean() *TypeDescriptor { return &TypeDescriptor{Name: "boolean", Kind: KindBoolean} }

func DateTime() *TypeDescriptor { return &TypeDescriptor{Name: "date-time", Kind: KindDateTime} }

func URI() *TypeDescriptor { return &TypeDescriptor{Name: "uri", Kind: KindURI} }

func Any() *TypeDescriptor { return &TypeDescriptor{Name: "any", Kind: KindAny} }

// ArrayOf describes a sequence whose elements are all of the given type.
func ArrayOf(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindArray, Elem: elem}
}

// MapOf describes a string-keyed mapping with values of the given type.
func MapOf(value *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindMap, Elem: value}
}

// EnumOf describes a named enumeration with its constant names in
// declaration order.
func EnumOf(name string, values ...string) *TypeDescriptor {
	return &TypeDescriptor{Name: name, Kind: KindEnum, EnumValues: values}
}
