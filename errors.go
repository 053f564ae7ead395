package typeschema

import "github.com/cockroachdb/errors"

// Generation errors are authoring errors: they point at the offending type
// declaration and are meant to be fixed at the source, not retried. Match
// them with errors.Is.
var (
	// ErrUnsupportedShape is returned when a complex type declares neither
	// the field-based nor the constructor-based shape.
	ErrUnsupportedShape = errors.New("unsupported data class shape - must declare one of the two recognized shapes")

	// ErrMissingPrimaryConstructor is returned when a constructor-shape type
	// has no primary constructor to read parameters from.
	ErrMissingPrimaryConstructor = errors.New("no primary constructor found for constructor-based shape")

	// ErrUnsupportedDefaultValueType is returned when a declared default
	// value cannot be coerced to its property's classified kind.
	ErrUnsupportedDefaultValueType = errors.New("unsupported default value type")

	// ErrRedirectionLookupFailed is returned when the resolver could not map
	// a declaration to the name of its generated schema constant.
	ErrRedirectionLookupFailed = errors.New("could not resolve the generated schema constant name")
)
