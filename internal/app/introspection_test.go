package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/inbound/graphql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	t.Cleanup(depend.ClearContainer)
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "STORE_BACKEND",
				UsedDefault: true,
			},
		},
	}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string](graphql.IntrospectionGraphName)
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var buf bytes.Buffer
	introspector := ReportLoggerIntrospector{Logger: log.New(&buf, "", 0)}

	err := introspector.Introspect(context.Background(), introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "MONGO_URI", UsedDefault: false},
			{Key: "GRAPHQL_SERVER_PORT", UsedDefault: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"ReportLoggerIntrospector: GRAPHQL_SERVER_PORT (default)\n"+
			"ReportLoggerIntrospector: MONGO_URI (configured)\n",
		buf.String(),
	)
}
