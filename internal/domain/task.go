package domain

import "context"

// Task is a unit of work belonging to a project.
//
// ProjectID is never checked against the project store, so it may reference a
// project that does not exist.
type Task struct {
	ID          string
	Title       string
	Weight      int
	Description string
	ProjectID   string
}

// TaskFilter narrows the tasks returned by TaskRepository.ListTasks.
// The zero value selects every task.
type TaskFilter struct {
	ProjectID *string
}

// ByProject returns a TaskFilter selecting the tasks of the given project.
func ByProject(projectID string) TaskFilter {
	return TaskFilter{ProjectID: &projectID}
}

// TaskRepository defines the interface for interacting with tasks in the data store.
type TaskRepository interface {
	// GetTask retrieves a task by its identifier. The boolean is false when
	// no task has that identifier.
	GetTask(ctx context.Context, id string) (Task, bool, error)

	// ListTasks retrieves the tasks matching the filter.
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)

	// CreateTask persists a new task and returns it with its store-assigned ID.
	CreateTask(ctx context.Context, task Task) (Task, error)
}
