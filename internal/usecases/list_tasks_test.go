package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testTasks = []domain.Task{
	{ID: "65f1c0ffee00000000000011", Title: "Create your first webpage", Weight: 1, Description: "0-index.html", ProjectID: "65f1c0ffee00000000000001"},
	{ID: "65f1c0ffee00000000000012", Title: "Structure your webpage", Weight: 1, Description: "1-index.html", ProjectID: "65f1c0ffee00000000000001"},
}

func TestListTasksImpl_Query(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(repo *domain.MockTaskRepository)
		expected        []domain.Task
		expectedErr     error
	}{
		"success": {
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.TaskFilter{}).Return(testTasks, nil)
			},
			expected: testTasks,
		},
		"repository-error": {
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.TaskFilter{}).Return(nil, errors.New("timeout"))
			},
			expectedErr: errors.New("timeout"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTaskRepository(t)
			tt.setExpectations(repo)

			lti := NewListTasksImpl(repo)
			got, err := lti.Query(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestListProjectTasksImpl_Query(t *testing.T) {
	projectID := "65f1c0ffee00000000000001"

	tests := map[string]struct {
		setExpectations func(repo *domain.MockTaskRepository)
		expected        []domain.Task
		expectedErr     error
	}{
		"success": {
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.ByProject(projectID)).Return(testTasks, nil)
			},
			expected: testTasks,
		},
		"no-tasks": {
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.ByProject(projectID)).Return([]domain.Task{}, nil)
			},
			expected: []domain.Task{},
		},
		"repository-error": {
			setExpectations: func(repo *domain.MockTaskRepository) {
				repo.EXPECT().ListTasks(mock.Anything, domain.ByProject(projectID)).Return(nil, errors.New("timeout"))
			},
			expectedErr: errors.New("timeout"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTaskRepository(t)
			tt.setExpectations(repo)

			lpti := NewListProjectTasksImpl(repo)
			got, err := lpti.Query(context.Background(), projectID)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListTasks_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitListTasks{TaskRepo: domain.NewMockTaskRepository(t)}.Initialize(context.Background())
	assert.NoError(t, err)
	_, err = InitListProjectTasks{TaskRepo: domain.NewMockTaskRepository(t)}.Initialize(context.Background())
	assert.NoError(t, err)

	listTasks, err := depend.Resolve[ListTasks]()
	assert.NoError(t, err)
	assert.NotNil(t, listTasks)

	listProjectTasks, err := depend.Resolve[ListProjectTasks]()
	assert.NoError(t, err)
	assert.NotNil(t, listProjectTasks)
}
