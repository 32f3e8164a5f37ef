package app

import (
	"context"
	"log"
	"sort"

	"github.com/MetaFrench/atlas-web-graphql/internal/adapters/inbound/graphql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector generates a Mermaid graph of the application's configuration
// and dependencies, and registers it for the introspection page.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, graphql.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs the configuration keys read at start-up and whether
// each one fell back to its default.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect logs the configuration section of the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*log.Logger]()
		if err != nil {
			logger = log.Default()
		} else {
			logger = resolved
		}
	}

	configs := append([]introspection.ConfigAccess{}, r.Configs...)
	sort.Slice(configs, func(a, b int) bool { return configs[a].Key < configs[b].Key })

	for _, c := range configs {
		source := "configured"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("ReportLoggerIntrospector: %s (%s)", c.Key, source)
	}
	return nil
}
