package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTasks defines the interface for the ListTasks use case.
type ListTasks interface {
	Query(ctx context.Context) ([]domain.Task, error)
}

// ListTasksImpl is the implementation of the ListTasks use case.
type ListTasksImpl struct {
	taskRepo domain.TaskRepository
}

// NewListTasksImpl creates a new instance of ListTasksImpl.
func NewListTasksImpl(taskRepo domain.TaskRepository) ListTasksImpl {
	return ListTasksImpl{
		taskRepo: taskRepo,
	}
}

// Query retrieves every task.
func (lti ListTasksImpl) Query(ctx context.Context) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tasks, err := lti.taskRepo.ListTasks(spanCtx, domain.TaskFilter{})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tasks, nil
}

// InitListTasks initializes the ListTasks use case and registers it in the dependency container.
type InitListTasks struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize registers the ListTasks use case in the dependency container.
func (ilt InitListTasks) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTasks](NewListTasksImpl(ilt.TaskRepo))
	return ctx, nil
}
