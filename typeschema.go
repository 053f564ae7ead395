package typeschema

// Generator is the main entrypoint for deriving JSON Schema documents from
// type declarations. It walks a type graph supplied as TypeDescriptors and
// produces one schema document per root type, with shared definitions
// extracted into `$defs`.
//
// A Generator holds no per-run state, so one instance can be reused across
// declarations and goroutines.
type Generator struct {
	schemaVersion string
	resolver      ConstantResolver
}

// New creates a new Generator with the given options.
//
// Example usage:
//
//	gen := typeschema.New(
//		typeschema.WithResolver(resolver),
//	)
func New(opts ...option) *Generator {
	gen := Generator{
		schemaVersion: SchemaVersion,
	}

	for _, opt := range opts {
		opt(&gen)
	}

	return &gen
}
