package graphql

import (
	"context"
	"strconv"
	"sync"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/MetaFrench/atlas-web-graphql/internal/usecases"
)

// memoryStore is an in-process implementation of both repositories that
// assigns sequential ids per entity.
type memoryStore struct {
	mu       sync.Mutex
	projects []domain.Project
	tasks    []domain.Task
}

func (m *memoryStore) GetProject(_ context.Context, id string) (domain.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.projects {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Project{}, false, nil
}

func (m *memoryStore) ListProjects(context.Context) ([]domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Project{}, m.projects...), nil
}

func (m *memoryStore) CreateProject(_ context.Context, p domain.Project) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = strconv.Itoa(len(m.projects) + 1)
	m.projects = append(m.projects, p)
	return p, nil
}

func (m *memoryStore) GetTask(_ context.Context, id string) (domain.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true, nil
		}
	}
	return domain.Task{}, false, nil
}

func (m *memoryStore) ListTasks(_ context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tasks := []domain.Task{}
	for _, t := range m.tasks {
		if filter.ProjectID == nil || *filter.ProjectID == t.ProjectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (m *memoryStore) CreateTask(_ context.Context, t domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = strconv.Itoa(len(m.tasks) + 1)
	m.tasks = append(m.tasks, t)
	return t, nil
}

// newMemoryServer wires the real use cases to a memoryStore.
func newMemoryServer() *AtlasGraphQLServer {
	store := &memoryStore{}
	return &AtlasGraphQLServer{
		GetTaskUsecase:          usecases.NewGetTaskImpl(store),
		GetProjectUsecase:       usecases.NewGetProjectImpl(store),
		ListTasksUsecase:        usecases.NewListTasksImpl(store),
		ListProjectsUsecase:     usecases.NewListProjectsImpl(store),
		ListProjectTasksUsecase: usecases.NewListProjectTasksImpl(store),
		CreateTaskUsecase:       usecases.NewCreateTaskImpl(store),
		CreateProjectUsecase:    usecases.NewCreateProjectImpl(store),
	}
}
