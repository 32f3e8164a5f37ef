package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetTask defines the interface for the GetTask use case.
type GetTask interface {
	// Query returns the task with the given id. The boolean is false when it does not exist.
	Query(ctx context.Context, id string) (domain.Task, bool, error)
}

// GetTaskImpl is the implementation of the GetTask use case.
type GetTaskImpl struct {
	taskRepo domain.TaskRepository
}

// NewGetTaskImpl creates a new instance of GetTaskImpl.
func NewGetTaskImpl(taskRepo domain.TaskRepository) GetTaskImpl {
	return GetTaskImpl{
		taskRepo: taskRepo,
	}
}

// Query retrieves a task by id.
func (gti GetTaskImpl) Query(ctx context.Context, id string) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("task.id", id),
	))
	defer span.End()

	task, found, err := gti.taskRepo.GetTask(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, false, err
	}
	return task, found, nil
}

// InitGetTask initializes the GetTask use case and registers it in the dependency container.
type InitGetTask struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize registers the GetTask use case in the dependency container.
func (igt InitGetTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTask](NewGetTaskImpl(igt.TaskRepo))
	return ctx, nil
}
