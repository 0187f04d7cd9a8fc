package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/rpggio/stageboard/internal/repository"
	"github.com/rpggio/stageboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingProjects() []project.Project {
	return []project.Project{
		{ID: "p1", ProjectNo: "P-100", ProjectName: "Alpha", CustomerName: "Acme"},
		{ID: "p2", ProjectNo: "P-200", ProjectName: "Beta", CustomerName: "Globex"},
	}
}

func TestProjectService_CreateTrimsAndAssignsID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(existingProjects(), nil)
	repo.On("Create", ctx, mock.MatchedBy(func(p *project.Project) bool {
		return p.ProjectNo == "P-300" && p.CustomerName == "Initech" && p.ID != ""
	})).Return(nil)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		ProjectNo:    "  P-300 ",
		ProjectName:  "Gamma",
		CustomerName: " Initech",
	})
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "P-300", proj.ProjectNo)
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, project.CreateRequest{ProjectName: "x", CustomerName: "y"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{ProjectNo: "   ", ProjectName: "x", CustomerName: "y"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.CreateRequest{ProjectNo: "P-1", CustomerName: "y"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_CreateRejectsDuplicateNumber(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(existingProjects(), nil)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectNo: " P-100 ", ProjectName: "x", CustomerName: "y"})
	require.ErrorIs(t, err, project.ErrDuplicateNumber)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_CreateMapsStoreDuplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Project{}, nil)
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectNo: "P-1", ProjectName: "x", CustomerName: "y"})
	require.ErrorIs(t, err, project.ErrDuplicateNumber)
}

func TestProjectService_CreateWrapsStoreFailure(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Project{}, nil)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectNo: "P-1", ProjectName: "x", CustomerName: "y"})

	var storeErr *repository.StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "creating project", storeErr.Op)
}

func TestProjectService_CreateLogsActivity(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return([]project.Project{}, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeProjectCreated && e.EntityType == activity.EntityProject
	})).Return(nil)

	svc := project.NewService(repo, activities, nil)
	_, err := svc.Create(ctx, project.CreateRequest{ProjectNo: "P-1", ProjectName: "x", CustomerName: "y"})
	require.NoError(t, err)
	activities.AssertExpectations(t)
}

func TestProjectService_UpdateSendsOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()

	want := patch.Patch{{Column: project.ColumnRemarks, Value: "rush"}}
	repo := &mocks.ProjectRepository{}
	repo.On("Update", ctx, "p1", want).Return(&project.Project{ID: "p1", ProjectNo: "P-100", Remarks: "rush"}, nil)

	svc := project.NewService(repo, nil, nil)
	proj, err := svc.Update(ctx, "p1", map[string]any{"remarks": "rush"})
	require.NoError(t, err)
	require.Equal(t, "rush", proj.Remarks)

	// No number change, so the duplicate guard never reads the collection.
	repo.AssertNotCalled(t, "List", mock.Anything)
	repo.AssertExpectations(t)
}

func TestProjectService_UpdateIgnoresUnknownKeys(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	_, err := svc.Update(ctx, "p1", map[string]any{"hacked": true})
	require.ErrorIs(t, err, patch.ErrNoValidFields)

	want := patch.Patch{{Column: project.ColumnOwner, Value: "Dana"}}
	repo.On("Update", ctx, "p1", want).Return(&project.Project{ID: "p1", Owner: "Dana"}, nil)
	_, err = svc.Update(ctx, "p1", map[string]any{"owner": "Dana", "hacked": true, "id": "p9"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProjectService_UpdateNumberGuard(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(existingProjects(), nil)

	svc := project.NewService(repo, nil, nil)

	_, err := svc.Update(ctx, "p2", map[string]any{"projectNo": "P-100"})
	require.ErrorIs(t, err, project.ErrDuplicateNumber)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)

	// Keeping its own number is not a collision.
	want := patch.Patch{{Column: project.ColumnProjectNo, Value: "P-200"}}
	repo.On("Update", ctx, "p2", want).Return(&project.Project{ID: "p2", ProjectNo: "P-200"}, nil)
	_, err = svc.Update(ctx, "p2", map[string]any{"projectNo": " P-200 "})
	require.NoError(t, err)
}

func TestProjectService_UpdateRejectsBlankNumber(t *testing.T) {
	svc := project.NewService(&mocks.ProjectRepository{}, nil, nil)
	_, err := svc.Update(context.Background(), "p1", map[string]any{"projectNo": "  "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Update", ctx, "missing", mock.Anything).Return(nil, repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Update(ctx, "missing", map[string]any{"owner": "x"})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_GetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing"), project.ErrProjectNotFound)
}

func TestProjectService_CheckNumber(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(existingProjects(), nil)

	svc := project.NewService(repo, nil, nil)

	check, err := svc.CheckNumber(ctx, "P-100 ", "")
	require.NoError(t, err)
	require.True(t, check.Duplicate)
	require.Equal(t, project.DuplicateMessage, check.Message)

	check, err = svc.CheckNumber(ctx, "P-100", "p1")
	require.NoError(t, err)
	require.False(t, check.Duplicate)
	require.Empty(t, check.Message)
}

func TestProjectService_UpdateRejectsNonScalarValue(t *testing.T) {
	repo := &mocks.ProjectRepository{}
	svc := project.NewService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "p1", map[string]any{"owner": map[string]any{"a": 1.0}})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	require.ErrorIs(t, err, patch.ErrInvalidValue)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
