package typeschema

import "github.com/cockroachdb/errors"

// session holds the state of one generation run: the definitions registry of
// finalized subschemas, keyed by type name. The set of types currently being
// expanded travels down the call stack separately, so that reuse across
// disjoint branches (registry hit) and genuine cycles (path hit) stay
// distinguishable.
type session struct {
	defs *SchemaNode
}

// Generate derives the JSON Schema document for the given root type.
//
// Every complex type reachable from the root is rendered exactly once: the
// root inline at the document top level, every other type as an entry in
// `$defs` with `$ref` pointers at each occurrence. Each call owns a fresh
// registry, so a single Generator can serve concurrent generations.
//
// Example usage:
//
//	schema, err := gen.Generate(person)
//	if err != nil {
//		return err
//	}
//
//	buf, err := schema.Document()
func (g *Generator) Generate(root *TypeDescriptor) (*SchemaNode, error) {
	if root == nil {
		return nil, errors.New("cannot generate a schema for a nil type")
	}

	sess := session{defs: NewSchemaNode()}

	body, err := sess.expand(root, true, make(map[string]struct{}))
	if err != nil {
		return nil, err
	}

	doc := NewSchemaNode().Set("$schema", g.schemaVersion)

	for pair := body.Oldest(); pair != nil; pair = pair.Next() {
		doc.Set(pair.Key, pair.Value)
	}

	return doc.Set("$defs", sess.defs), nil
}

// expand renders the object schema of one complex type.
//
// Non-root occurrences short-circuit to a $ref when the type is already
// finalized in the registry, or when it sits on the active expansion path (a
// cycle - the owning outer call will fill in the body). The root type is
// special cased: its body is emitted inline at the document top level and is
// never duplicated into the registry, even when the graph cycles back to it.
func (s *session) expand(t *TypeDescriptor, isRoot bool, path map[string]struct{}) (*SchemaNode, error) {
	if !isRoot {
		if _, done := s.defs.Get(t.Name); done {
			return refNode(t.Name), nil
		}

		if _, expanding := path[t.Name]; expanding {
			return refNode(t.Name), nil
		}
	}

	path[t.Name] = struct{}{}
	defer delete(path, t.Name)

	props, err := extractProperties(t)
	if err != nil {
		return nil, err
	}

	properties := NewSchemaNode()
	required := make([]string, 0, len(props))

	for _, prop := range props {
		sub, err := s.classify(prop.Type, path)
		if err != nil {
			return nil, errors.Wrapf(err, "type '%s'", t.Name)
		}

		if prop.Description != "" {
			sub.Set("description", prop.Description)
		}

		if prop.HasDefault {
			value, err := coerceDefault(prop)
			if err != nil {
				return nil, errors.Wrapf(err, "type '%s'", t.Name)
			}

			sub.Set("default", value)
		}

		properties.Set(prop.Name, sub)

		if prop.Required {
			required = append(required, prop.Name)
		}
	}

	node := NewSchemaNode().Set("type", "object").Set("properties", properties)

	if len(required) > 0 {
		node.Set("required", required)
	}

	if isRoot {
		return node, nil
	}

	s.defs.Set(t.Name, node)

	return refNode(t.Name), nil
}
