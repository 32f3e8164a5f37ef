package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// disabled is the config value that turns an exporter off.
const disabled = "-"

// InitOpenTelemetry installs the global propagator and, when their endpoints are
// configured, the OTLP tracer and meter providers.
type InitOpenTelemetry struct {
	Logger          *log.Logger   `resolve:""`
	ServiceName     string        `config:"OTEL_SERVICE_NAME" default:"atlas-graphql"`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	MetricsInterval time.Duration `config:"OTEL_METRIC_EXPORT_INTERVAL" default:"5s"`
	tp              *sdktrace.TracerProvider
	mp              *sdkmetric.MeterProvider
}

// Initialize sets up OpenTelemetry propagation, tracing and metrics.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(o.ServiceName)))
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}

	if o.TracesEndpoint != disabled && o.TracesEndpoint != "" {
		o.tp, _, err = newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != disabled && o.MetricsEndpoint != "" {
		interval := o.MetricsInterval
		if interval <= 0 {
			interval = 5 * time.Second
		}
		o.mp, _, err = newMeterProvider(ctx, res, interval)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(o.mp)
	}

	return ctx, nil
}

// Close flushes and shuts down whichever providers were started.
// Providers shut their exporters down as part of their own shutdown.
func (o *InitOpenTelemetry) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(ctx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: failed to shut down tracer provider: %v", err)
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(ctx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: failed to shut down meter provider: %v", err)
		}
	}
}

// InitHttpClient registers an *http.Client that retries transient failures and
// propagates trace context on every outbound request.
type InitHttpClient struct {
	Logger   *log.Logger   `resolve:""`
	RetryMax int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	WaitMax  time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

// Initialize builds the client and registers it in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewHttpClient(i.Logger, i.RetryMax, i.WaitMax))
	return ctx, nil
}

// NewHttpClient creates a retrying, OpenTelemetry instrumented *http.Client.
func NewHttpClient(logger *log.Logger, retryMax int, waitMax time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMax = waitMax
	retryClient.CheckRetry = retryUnavailableOnly(retryablehttp.ErrorPropagatedRetryPolicy)
	if logger != nil {
		retryClient.Logger = logger
	}

	client := retryClient.StandardClient()
	client.Transport = otelhttp.NewTransport(
		client.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return client
}

// retryUnavailableOnly stops retrying once the caller gave up and never retries
// a 500, which a GraphQL server only returns for a deterministic failure.
func retryUnavailableOnly(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
