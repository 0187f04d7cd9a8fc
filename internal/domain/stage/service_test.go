package stage_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/rpggio/stageboard/internal/repository"
	"github.com/rpggio/stageboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStageService_CreateTrimsName(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StageRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(st *stage.Stage) bool {
		return st.Name == "Welding" && st.ID != ""
	})).Return(nil)

	svc := stage.NewService(repo, nil, nil)
	st, err := svc.Create(ctx, stage.CreateRequest{Name: "  Welding "})
	require.NoError(t, err)
	require.Equal(t, "Welding", st.Name)
	repo.AssertExpectations(t)
}

func TestStageService_CreateValidation(t *testing.T) {
	svc := stage.NewService(&mocks.StageRepository{}, nil, nil)
	_, err := svc.Create(context.Background(), stage.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, stage.ErrInvalidInput)
}

func TestStageService_UpdateWhitelist(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StageRepository{}
	want := patch.Patch{{Column: stage.ColumnRemarks, Value: "late"}}
	repo.On("Update", ctx, "s1", want).Return(&stage.Stage{ID: "s1", Name: "Paint", Remarks: "late"}, nil)

	svc := stage.NewService(repo, nil, nil)
	st, err := svc.Update(ctx, "s1", map[string]any{"remarks": "late", "id": "s2"})
	require.NoError(t, err)
	require.Equal(t, "late", st.Remarks)

	_, err = svc.Update(ctx, "s1", map[string]any{"color": "red"})
	require.ErrorIs(t, err, patch.ErrNoValidFields)

	_, err = svc.Update(ctx, "s1", map[string]any{"name": " "})
	require.ErrorIs(t, err, stage.ErrInvalidInput)
	repo.AssertExpectations(t)
}

func TestStageService_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StageRepository{}
	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)
	repo.On("Update", ctx, "missing", mock.Anything).Return(nil, repository.ErrNotFound)
	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	svc := stage.NewService(repo, nil, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, stage.ErrStageNotFound)
	_, err = svc.Update(ctx, "missing", map[string]any{"name": "x"})
	require.ErrorIs(t, err, stage.ErrStageNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing"), stage.ErrStageNotFound)
}

func TestStageService_ActivityFailureIsLogged(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.StageRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.EntityType == activity.EntityStage
	})).Return(errors.New("audit table locked"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	svc := stage.NewService(repo, activities, logger)
	_, err := svc.Create(ctx, stage.CreateRequest{Name: "Paint"})
	require.NoError(t, err)
	require.Contains(t, logs.String(), "failed to log stage activity")
	require.Contains(t, logs.String(), "audit table locked")
	activities.AssertExpectations(t)
}

func TestStageService_UpdateRejectsNonScalarValue(t *testing.T) {
	repo := &mocks.StageRepository{}
	svc := stage.NewService(repo, nil, nil)

	_, err := svc.Update(context.Background(), "s1", map[string]any{"remarks": []any{"x"}})
	require.ErrorIs(t, err, stage.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
