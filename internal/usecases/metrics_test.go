package usecases

import (
	"context"
	"testing"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordEntityCreated(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	projectRepo := domain.NewMockProjectRepository(t)
	projectRepo.EXPECT().CreateProject(mock.Anything, mock.Anything).Return(domain.Project{ID: "p1"}, nil)
	taskRepo := domain.NewMockTaskRepository(t)
	taskRepo.EXPECT().CreateTask(mock.Anything, mock.Anything).Return(domain.Task{ID: "t1"}, nil).Times(2)

	ctx := context.Background()
	_, err := NewCreateProjectImpl(projectRepo).Execute(ctx, "Advanced HTML", 1, "HTML")
	require.NoError(t, err)
	for range 2 {
		_, err = NewCreateTaskImpl(taskRepo).Execute(ctx, "Create your first webpage", 1, "0-index.html", "p1")
		require.NoError(t, err)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "entities_created_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				entity, _ := dp.Attributes.Value("entity")
				counts[entity.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"project": 1, "task": 2}, counts)
}
