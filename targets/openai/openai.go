// Package openai packages generated schema documents as OpenAI structured
// output response formats.
package openai

import (
	"github.com/checkmarble/typeschema"
	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go"
)

// ResponseFormat emits a schema document as a strict `response_format` for
// chat completion requests.
//
// Example usage:
//
//	format, err := openai.ResponseFormat{Name: "person"}.Emit(schema)
//	if err != nil {
//		return err
//	}
//
//	cfg := openai.ChatCompletionNewParams{ResponseFormat: format}
type ResponseFormat struct {
	Name        string
	Description string
}

var _ typeschema.Emitter[openai.ChatCompletionNewParamsResponseFormatUnion] = ResponseFormat{}

func (f ResponseFormat) Emit(schema *typeschema.SchemaNode) (openai.ChatCompletionNewParamsResponseFormatUnion, error) {
	if schema == nil {
		return openai.ChatCompletionNewParamsResponseFormatUnion{}, errors.New("cannot emit a nil schema document")
	}

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        f.Name,
				Description: openai.String(f.Description),
				Schema:      schema,
				Strict:      openai.Bool(true),
			},
		},
	}, nil
}
