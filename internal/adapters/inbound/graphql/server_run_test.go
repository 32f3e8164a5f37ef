package graphql

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAtlasGraphQLServer_Run(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := &AtlasGraphQLServer{
		Port:   12345,
		Logger: log.New(io.Discard, "", 0),
	}

	shutdownCh := make(chan error, 1)

	go func() {
		shutdownCh <- server.Run(cancelCtx)
	}()

	var readyErr error
	for range 50 {
		readyErr = server.IsReady(cancelCtx)
		if readyErr == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.NoError(t, readyErr)

	cancel()

	select {
	case err := <-shutdownCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		assert.Fail(t, "server did not shut down in time")
	}
}

func TestAtlasGraphQLServer_Routes(t *testing.T) {
	gt := usecases.NewMockGetTask(t)
	gt.EXPECT().Query(mock.Anything, "t1").Return(domain.Task{ID: "t1", Title: "Write copy", Weight: 2}, true, nil).Maybe()

	server := &AtlasGraphQLServer{GetTaskUsecase: gt}
	mux, err := server.newMux()
	require.NoError(t, err)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	depend.RegisterNamed("graph TD;\nA-->B;", IntrospectionGraphName)
	t.Cleanup(depend.ClearContainer)

	tests := map[string]struct {
		method        string
		path          string
		body          string
		expectedCode  int
		shouldContain []string
	}{
		"post-query": {
			method:        http.MethodPost,
			path:          "/v1/query",
			body:          `{"query":"{ task(id: \"t1\") { id title weight } }"}`,
			expectedCode:  http.StatusOK,
			shouldContain: []string{`"title":"Write copy"`, `"weight":2`},
		},
		"get-query": {
			method:        http.MethodGet,
			path:          "/v1/query?query=%7B%20task(id%3A%20%22t1%22)%20%7B%20id%20%7D%20%7D",
			expectedCode:  http.StatusOK,
			shouldContain: []string{`"id":"t1"`},
		},
		"schema-sdl": {
			method:        http.MethodGet,
			path:          "/v1/schema.graphql",
			expectedCode:  http.StatusOK,
			shouldContain: []string{"type RootQueryType", "addTask(title: String!, weight: Int!, description: String!, projectId: ID!): Task"},
		},
		"playground": {
			method:        http.MethodGet,
			path:          "/",
			expectedCode:  http.StatusOK,
			shouldContain: []string{"<title>Atlas GraphQL</title>"},
		},
		"introspect": {
			method:        http.MethodGet,
			path:          "/introspect",
			expectedCode:  http.StatusOK,
			shouldContain: []string{"<title>Atlas internals</title>"},
		},
		"unknown-route": {
			method:       http.MethodGet,
			path:         "/nope",
			expectedCode: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			for _, expected := range tt.shouldContain {
				assert.Contains(t, string(body), expected)
			}
		})
	}
}

func TestAtlasGraphQLServer_MissingArgumentOverHTTP(t *testing.T) {
	server := &AtlasGraphQLServer{CreateTaskUsecase: usecases.NewMockCreateTask(t)}
	mux, err := server.newMux()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/query",
		strings.NewReader(`{"query":"mutation { addTask(title: \"t\", description: \"d\", projectId: \"1\") { id } }"}`))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)

	var body struct {
		Data   any              `json:"data"`
		Errors []map[string]any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Data)
	require.NotEmpty(t, body.Errors)
	assert.Contains(t, body.Errors[0]["message"], "weight")
}

func TestAtlasGraphQLServer_Pretty(t *testing.T) {
	tests := map[string]struct {
		pretty   bool
		indented bool
	}{
		"compact": {pretty: false, indented: false},
		"pretty":  {pretty: true, indented: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lp := usecases.NewMockListProjects(t)
			lp.EXPECT().Query(mock.Anything).Return([]domain.Project{{ID: "p1", Title: "Bootstrap"}}, nil)

			server := &AtlasGraphQLServer{ListProjectsUsecase: lp, Pretty: tt.pretty}
			mux, err := server.newMux()
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{"query":"{ projects { id } }"}`))
			req.Header.Set("Content-Type", "application/json")
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.indented, strings.Contains(rec.Body.String(), "\n\t"))
			assert.Contains(t, rec.Body.String(), `"p1"`)
		})
	}
}
