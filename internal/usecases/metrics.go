package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	entityProject = "project"
	entityTask    = "task"
)

var (
	meter           = otel.Meter("usecases")
	EntitiesCreated metric.Int64Counter
)

func init() {
	var err error
	EntitiesCreated, err = meter.Int64Counter(
		"entities_created_total",
		metric.WithDescription("Total projects and tasks created"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEntityCreated counts one successfully persisted entity of the given kind.
func RecordEntityCreated(ctx context.Context, entity string) {
	EntitiesCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
	))
}
