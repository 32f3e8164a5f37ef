package graphql

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/MetaFrench/atlas-web-graphql/internal/usecases"
	"github.com/graphql-go/handler"
	"github.com/rs/cors"
)

//go:embed schema.graphqls
var schemaSDL []byte

// AtlasGraphQLServer serves the task and project GraphQL API.
type AtlasGraphQLServer struct {
	Logger                  *log.Logger               `resolve:""`
	GetTaskUsecase          usecases.GetTask          `resolve:""`
	GetProjectUsecase       usecases.GetProject       `resolve:""`
	ListTasksUsecase        usecases.ListTasks        `resolve:""`
	ListProjectsUsecase     usecases.ListProjects     `resolve:""`
	ListProjectTasksUsecase usecases.ListProjectTasks `resolve:""`
	CreateTaskUsecase       usecases.CreateTask       `resolve:""`
	CreateProjectUsecase    usecases.CreateProject    `resolve:""`
	Port                    int                       `config:"GRAPHQL_SERVER_PORT" default:"4000"`
	Pretty                  bool                      `config:"GRAPHQL_PRETTY" default:"false"`
}

// Run builds the schema and serves HTTP until ctx is canceled.
func (s *AtlasGraphQLServer) Run(ctx context.Context) error {
	mux, err := s.newMux()
	if err != nil {
		return err
	}

	svr := &http.Server{
		Handler:           mux,
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("AtlasGraphQLServer: Listening on port %d", s.Port)
		errCh <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("AtlasGraphQLServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// IsReady reports whether the server answers on its playground route.
func (s *AtlasGraphQLServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/", s.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (s *AtlasGraphQLServer) newMux() (*http.ServeMux, error) {
	schema, err := NewSchema(s)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	h := handler.New(&handler.Config{
		Schema: &schema,
		Pretty: s.Pretty,
	})

	mux := http.NewServeMux()
	mux.Handle("/v1/query", cors.AllowAll().Handler(
		telemetry.HttpHandler(h, "atlas-graphql"),
	))
	mux.HandleFunc("GET /v1/schema.graphql", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(schemaSDL)
	})
	mux.HandleFunc("GET /introspect", s.introspect)
	mux.Handle("GET /{$}", playground.Handler("Atlas GraphQL", "/v1/query"))

	return mux, nil
}
