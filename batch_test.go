package typeschema_test

import (
	"strings"
	"testing"

	"github.com/checkmarble/typeschema"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestGenerateBatch(t *testing.T) {
	gen := typeschema.New(typeschema.WithResolver(typeschema.ResolverFunc(func(decl typeschema.Declaration) (string, error) {
		return strings.ToUpper(decl.Name) + "_SCHEMA", nil
	})))

	person := personType(t)
	user, err := typeschema.NewType("User").
		WithParam("email", typeschema.String(), typeschema.Required()).
		Build()

	require.NoError(t, err)

	results := gen.GenerateBatch(
		typeschema.Declaration{Name: "person", Type: person},
		typeschema.Declaration{Name: "user", Type: user},
	)

	require.Len(t, results, 2)

	assert.Equal(t, "PERSON_SCHEMA", results[0].Constant)
	assert.Equal(t, "USER_SCHEMA", results[1].Constant)

	for _, result := range results {
		require.NoError(t, result.Error)

		buf, err := result.Schema.Document()

		require.NoError(t, err)
		assert.Equal(t, "object", gjson.GetBytes(buf, "type").String())
	}
}

func TestBatchFailuresAreIsolated(t *testing.T) {
	gen := typeschema.New()

	shapeless := typeschema.TypeDescriptor{
		Name: "Shapeless",
		Kind: typeschema.KindComplex,
	}

	results := gen.GenerateBatch(
		typeschema.Declaration{Name: "broken", Type: &shapeless},
		typeschema.Declaration{Name: "person", Type: personType(t)},
	)

	require.Len(t, results, 2)

	assert.True(t, errors.Is(results[0].Error, typeschema.ErrUnsupportedShape))
	assert.ErrorContains(t, results[0].Error, "broken")
	assert.Nil(t, results[0].Schema)

	require.NoError(t, results[1].Error)
	assert.NotNil(t, results[1].Schema)
}

func TestBatchRedirectionLookupFailure(t *testing.T) {
	gen := typeschema.New(typeschema.WithResolver(typeschema.ResolverFunc(func(decl typeschema.Declaration) (string, error) {
		if decl.Name == "orphan" {
			return "", errors.Newf("no schema-holding declaration matches '%s'", decl.Name)
		}

		return decl.Name, nil
	})))

	results := gen.GenerateBatch(
		typeschema.Declaration{Name: "orphan", Type: personType(t)},
		typeschema.Declaration{Name: "person", Type: personType(t)},
	)

	require.Len(t, results, 2)

	assert.True(t, errors.Is(results[0].Error, typeschema.ErrRedirectionLookupFailed))
	assert.ErrorContains(t, results[0].Error, "orphan")

	require.NoError(t, results[1].Error)
	assert.Equal(t, "person", results[1].Constant)
}
