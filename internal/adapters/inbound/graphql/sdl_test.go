package graphql

import (
	"sort"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// TestSchemaMatchesSDL keeps the published schema.graphqls and the executable schema in sync.
func TestSchemaMatchesSDL(t *testing.T) {
	published, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: string(schemaSDL)})
	require.NoError(t, err)

	runtime, err := NewSchema(&AtlasGraphQLServer{})
	require.NoError(t, err)

	require.NotNil(t, published.Query)
	require.NotNil(t, published.Mutation)
	assert.Equal(t, published.Query.Name, runtime.QueryType().Name())
	assert.Equal(t, published.Mutation.Name, runtime.MutationType().Name())

	for _, typeName := range []string{"Task", "Project", "RootQueryType", "Mutation"} {
		t.Run(typeName, func(t *testing.T) {
			def := published.Types[typeName]
			require.NotNil(t, def)

			obj, ok := runtime.Type(typeName).(*graphql.Object)
			require.True(t, ok, "runtime type %s is not an object", typeName)

			assert.Equal(t, sdlFields(def), runtimeFields(obj))
		})
	}
}

// sdlFields renders each field as "name(arg: Type, ...): Type".
func sdlFields(def *ast.Definition) map[string]string {
	out := map[string]string{}
	for _, f := range def.Fields {
		if strings.HasPrefix(f.Name, "__") {
			continue
		}
		var args []string
		for _, a := range f.Arguments {
			args = append(args, a.Name+": "+a.Type.String())
		}
		out[f.Name] = signature(args, f.Type.String())
	}
	return out
}

func runtimeFields(obj *graphql.Object) map[string]string {
	out := map[string]string{}
	for name, f := range obj.Fields() {
		var args []string
		for _, a := range f.Args {
			args = append(args, a.Name()+": "+a.Type.String())
		}
		out[name] = signature(args, f.Type.String())
	}
	return out
}

func signature(args []string, result string) string {
	sort.Strings(args)
	return "(" + strings.Join(args, ", ") + "): " + result
}
