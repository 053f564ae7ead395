package typeschema

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Declaration is one annotated type declaration submitted for generation.
type Declaration struct {
	// Name identifies the declaration in error messages and doubles as the
	// constant name when no resolver is configured.
	Name string
	Type *TypeDescriptor
}

// ConstantResolver maps a declaration to the name under which its generated
// schema constant must be exposed. A failed lookup aborts generation for
// that declaration only.
type ConstantResolver interface {
	Resolve(decl Declaration) (string, error)
}

// ResolverFunc adapts a plain function into a ConstantResolver.
type ResolverFunc func(Declaration) (string, error)

func (f ResolverFunc) Resolve(decl Declaration) (string, error) {
	return f(decl)
}

// BatchResult is the outcome of generating one declaration of a batch.
type BatchResult struct {
	Declaration Declaration
	// Constant is the resolved name of the generated schema constant.
	Constant string
	Schema   *SchemaNode
	Error    error
}

// GenerateBatch generates schemas for a batch of declarations, one run per
// declaration. Runs execute concurrently; each owns a fresh definitions
// registry, so a failing declaration never disturbs its siblings. Results
// are returned in declaration order.
func (g *Generator) GenerateBatch(decls ...Declaration) []BatchResult {
	var wg sync.WaitGroup

	results := make([]BatchResult, len(decls))

	for idx, decl := range decls {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[idx] = g.generateDeclaration(decl)
		}()
	}

	wg.Wait()

	return results
}

func (g *Generator) generateDeclaration(decl Declaration) BatchResult {
	result := BatchResult{
		Declaration: decl,
		Constant:    decl.Name,
	}

	if g.resolver != nil {
		constant, err := g.resolver.Resolve(decl)
		if err != nil {
			result.Error = errors.Wrapf(errors.Mark(err, ErrRedirectionLookupFailed), "declaration '%s'", decl.Name)
			return result
		}

		result.Constant = constant
	}

	schema, err := g.Generate(decl.Type)
	if err != nil {
		result.Error = errors.Wrapf(err, "declaration '%s'", decl.Name)
		return result
	}

	result.Schema = schema

	return result
}
