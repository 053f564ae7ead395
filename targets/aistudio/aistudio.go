// Package aistudio packages generated schema documents for the Google GenAI
// SDK, enforcing them on model responses.
package aistudio

import (
	"github.com/checkmarble/typeschema"
	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// ResponseFormat emits a schema document as a generation config constraining
// model output to JSON matching the schema.
type ResponseFormat struct{}

var _ typeschema.Emitter[*genai.GenerateContentConfig] = ResponseFormat{}

func (ResponseFormat) Emit(schema *typeschema.SchemaNode) (*genai.GenerateContentConfig, error) {
	if schema == nil {
		return nil, errors.New("cannot emit a nil schema document")
	}

	return &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: schema,
	}, nil
}
