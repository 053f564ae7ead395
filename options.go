package typeschema

type option func(*Generator)

// WithSchemaVersion overrides the dialect URI carried in the `$schema` key
// of generated documents.
func WithSchemaVersion(uri string) option {
	return func(gen *Generator) {
		gen.schemaVersion = uri
	}
}

// WithResolver configures the lookup used by batch generation to map a
// declaration to the name of its generated schema constant.
func WithResolver(resolver ConstantResolver) option {
	return func(gen *Generator) {
		gen.resolver = resolver
	}
}
