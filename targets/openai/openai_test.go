package openai_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/checkmarble/typeschema/reflectgraph"
	target "github.com/checkmarble/typeschema/targets/openai"
	"github.com/h2non/gock"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const openaiResponse = `
{
	"model": "themodel",
	"choices": [
	    {
			"index": 0,
			"message": {
		        "type": "message",
		        "role": "assistant",
		        "content": "{\"name\":\"Ada\",\"age\":36}"
			}
	    }
	]
}
`

func TestResponseFormatRoundTrip(t *testing.T) {
	defer gock.Off()

	type Person struct {
		Name string `json:"name" jsonschema_description:"Full name"`
		Age  int    `json:"age"`
	}

	schema, err := reflectgraph.Schema[Person](nil)
	require.NoError(t, err)

	format, err := target.ResponseFormat{Name: "person", Description: "A person"}.Emit(schema)
	require.NoError(t, err)

	gock.New("https://api.openai.com").
		Post("/v1/chat/completions").
		MatchHeader("authorization", "Bearer apikey").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, _ := io.ReadAll(req.Body)

			assert.Equal(t, "json_schema", gjson.GetBytes(body, "response_format.type").String())
			assert.Equal(t, "person", gjson.GetBytes(body, "response_format.json_schema.name").String())
			assert.True(t, gjson.GetBytes(body, "response_format.json_schema.strict").Bool())
			assert.Equal(t, "https://json-schema.org/draft/2020-12/schema",
				gjson.GetBytes(body, "response_format.json_schema.schema.$schema").String())
			assert.Equal(t, "string", gjson.GetBytes(body, "response_format.json_schema.schema.properties.name.type").String())
			assert.Equal(t, "integer", gjson.GetBytes(body, "response_format.json_schema.schema.properties.age.type").String())
			assert.ElementsMatch(t, []any{"name", "age"}, gjson.GetBytes(body, "response_format.json_schema.schema.required").Value())

			return true, nil
		}).
		Reply(http.StatusOK).
		SetHeader("content-type", "application/json").
		BodyString(openaiResponse)

	client := openai.NewClient(option.WithAPIKey("apikey"))

	_, err = client.Chat.Completions.New(t.Context(), openai.ChatCompletionNewParams{
		Model: "themodel",
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Describe a person."),
		},
		ResponseFormat: format,
	})

	require.NoError(t, err)
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestEmitNilSchema(t *testing.T) {
	_, err := target.ResponseFormat{Name: "person"}.Emit(nil)

	assert.Error(t, err)
}
