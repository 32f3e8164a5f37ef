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

func TestCreateProjectImpl_Execute(t *testing.T) {
	input := domain.Project{
		Title:       "Advanced HTML",
		Weight:      1,
		Description: "Welcome to the Web Stack specialization.",
	}
	persisted := input
	persisted.ID = "65f1c0ffee00000000000001"

	tests := map[string]struct {
		setExpectations func(repo *domain.MockProjectRepository)
		expected        domain.Project
		expectedErr     error
	}{
		"success": {
			setExpectations: func(repo *domain.MockProjectRepository) {
				repo.EXPECT().CreateProject(mock.Anything, input).Return(persisted, nil)
			},
			expected: persisted,
		},
		"repository-error": {
			setExpectations: func(repo *domain.MockProjectRepository) {
				repo.EXPECT().CreateProject(mock.Anything, input).Return(domain.Project{}, errors.New("connection refused"))
			},
			expected:    domain.Project{},
			expectedErr: errors.New("connection refused"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockProjectRepository(t)
			tt.setExpectations(repo)

			cpi := NewCreateProjectImpl(repo)
			got, gotErr := cpi.Execute(context.Background(), input.Title, input.Weight, input.Description)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitCreateProject_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	icp := InitCreateProject{ProjectRepo: domain.NewMockProjectRepository(t)}

	ctx, err := icp.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CreateProject]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
