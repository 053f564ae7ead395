package typeschema

import (
	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SchemaVersion is the dialect URI carried by every generated document.
const SchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// SchemaNode is one JSON Schema fragment, as a string-keyed mapping whose
// keys keep their insertion order when marshaled. Ordering matters: the
// `properties` and `$defs` sections must follow source declaration order,
// which makes generated documents byte-stable across runs.
type SchemaNode struct {
	*orderedmap.OrderedMap[string, any]
}

func NewSchemaNode() *SchemaNode {
	return &SchemaNode{orderedmap.New[string, any]()}
}

// Set stores a key and returns the node for chaining.
func (n *SchemaNode) Set(key string, value any) *SchemaNode {
	n.OrderedMap.Set(key, value)

	return n
}

// Document serializes the node as a JSON document.
func (n *SchemaNode) Document() ([]byte, error) {
	buf, err := json.Marshal(n)
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize schema document")
	}

	return buf, nil
}

func refNode(name string) *SchemaNode {
	return NewSchemaNode().Set("$ref", "#/$defs/"+name)
}
