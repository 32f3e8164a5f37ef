package usecases

import (
	"context"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateTask defines the interface for the CreateTask use case.
type CreateTask interface {
	Execute(ctx context.Context, title string, weight int, description string, projectID string) (domain.Task, error)
}

// CreateTaskImpl is the implementation of the CreateTask use case.
//
// The project referenced by projectID is not looked up: a task may point to a
// project that does not exist.
type CreateTaskImpl struct {
	taskRepo domain.TaskRepository
}

// NewCreateTaskImpl creates a new instance of CreateTaskImpl.
func NewCreateTaskImpl(taskRepo domain.TaskRepository) CreateTaskImpl {
	return CreateTaskImpl{
		taskRepo: taskRepo,
	}
}

// Execute persists a new task and returns it with its store-assigned ID.
func (cti CreateTaskImpl) Execute(ctx context.Context, title string, weight int, description string, projectID string) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	task, err := cti.taskRepo.CreateTask(spanCtx, domain.Task{
		Title:       title,
		Weight:      weight,
		Description: description,
		ProjectID:   projectID,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	RecordEntityCreated(spanCtx, entityTask)
	return task, nil
}

// InitCreateTask initializes the CreateTask use case and registers it in the dependency container.
type InitCreateTask struct {
	TaskRepo domain.TaskRepository `resolve:""`
}

// Initialize registers the CreateTask use case in the dependency container.
func (ict InitCreateTask) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTask](NewCreateTaskImpl(ict.TaskRepo))
	return ctx, nil
}
