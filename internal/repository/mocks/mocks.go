package mocks

import (
	"context"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, id string, p patch.Patch) (*project.Project, error) {
	args := m.Called(ctx, id, p)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// StageRepository is a mock for stage.Repository.
type StageRepository struct {
	mock.Mock
}

func (m *StageRepository) Create(ctx context.Context, st *stage.Stage) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StageRepository) Get(ctx context.Context, id string) (*stage.Stage, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*stage.Stage); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StageRepository) List(ctx context.Context) ([]stage.Stage, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]stage.Stage); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StageRepository) Update(ctx context.Context, id string, p patch.Patch) (*stage.Stage, error) {
	args := m.Called(ctx, id, p)
	if st, ok := args.Get(0).(*stage.Stage); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
