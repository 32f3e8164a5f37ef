package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListProjectTasks defines the interface for the ListProjectTasks use case.
type ListProjectTasks interface {
	// Query returns the tasks whose ProjectID equals projectID.
	Query(ctx context.Context, projectID string) ([]domain.Task, error)
}

// ListProjectTasksImpl is the implementation of the ListProjectTasks use case.
type ListProjectTasksImpl struct {
	taskRepo domain.TaskRepository
}

// NewListProjectTasksImpl creates a new instance of ListProjectTasksImpl.
func NewListProjectTasksImpl(taskRepo domain.TaskRepository) ListProjectTasksImpl {
	return ListProjectTasksImpl{
		taskRepo: taskRepo,
	}
}

// Query retrieves the tasks of a single project.
func (lpti ListProjectTasksImpl) Query(ctx context.Context, projectID string) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", projectID),
	))
	defer span.End()

	tasks, err := lpti.taskRepo.ListTasks(spanCtx, domain.ByProject(projectID))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// InitListProjectTasks initializes the ListProjectTasks use case and registers it in the dependency container.
type InitListProjectTasks struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize registers the ListProjectTasks use case in the dependency container.
func (ilpt InitListProjectTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListProjectTasks](NewListProjectTasksImpl(ilpt.TaskRepo))
	return ctx, nil
}
