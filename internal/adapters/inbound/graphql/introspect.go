package graphql

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the name under which the Mermaid dependency graph is registered.
const IntrospectionGraphName = "introspection-graph-mermaid"

//go:embed templates/introspect.gohtml
var introspectFS embed.FS

var introspectPage = template.Must(template.ParseFS(introspectFS, "templates/introspect.gohtml"))

type introspectView struct {
	Graph  string
	Schema string
}

// introspect serves the component graph next to the published schema.
// With ?format=mermaid only the raw graph definition is written.
func (s *AtlasGraphQLServer) introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "dependency graph unavailable", http.StatusServiceUnavailable)
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
		return
	}

	var buf bytes.Buffer
	if err := introspectPage.Execute(&buf, introspectView{Graph: graph, Schema: string(schemaSDL)}); err != nil {
		s.Logger.Printf("AtlasGraphQLServer: rendering introspection page: %v", err)
		http.Error(w, "failed to render introspection page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
