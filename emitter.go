package typeschema

// Emitter adapts a generated schema document into a consumer-specific
// representation.
//
// Used to abstract over emission targets across packages: how a document is
// written to a file, embedded as a source constant or handed to an API SDK
// is the target's concern, not the engine's.
type Emitter[T any] interface {
	Emit(schema *SchemaNode) (T, error)
}
