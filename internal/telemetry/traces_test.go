package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		method   string
		path     string
		pattern  string
		expected string
	}{
		"uses-route-pattern": {
			method:   http.MethodPost,
			path:     "/v1/query",
			pattern:  "POST /v1/query",
			expected: "POST /v1/query",
		},
		"falls-back-to-method-and-path": {
			method:   http.MethodGet,
			path:     "/v1/schema.graphql",
			expected: "GET /v1/schema.graphql",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Pattern = tt.pattern
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &recordingSpan{}
	assert.True(t, RecordErrorAndStatus(span, errors.New("store unavailable")))
	assert.Equal(t, "store unavailable", span.lastError)
	assert.Equal(t, codes.Error, span.statusCode)
	assert.Equal(t, "store unavailable", span.statusMsg)

	span = &recordingSpan{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Empty(t, span.lastError)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestStart(t *testing.T) {
	exporter := useInMemoryTracer(t)

	_, span := Start(context.Background(), WithGraphQLField("Task", "project"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::TestStart", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("graphql.field.parent_type", "Task"))
	assert.Contains(t, spans[0].Attributes, attribute.String("graphql.field.name", "project"))
}

func TestStart_MethodReceiver(t *testing.T) {
	exporter := useInMemoryTracer(t)

	spanOwner{}.work()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "telemetry::spanOwner::work", spans[0].Name)
}

type spanOwner struct{}

func (spanOwner) work() {
	_, span := Start(context.Background())
	span.End()
}

func useInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
	previous := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() { tracer = previous })
	return exporter
}

type recordingSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.lastError = err.Error()
}

func (s *recordingSpan) SetStatus(code codes.Code, msg string) {
	s.statusCode = code
	s.statusMsg = msg
}
