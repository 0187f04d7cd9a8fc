package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	for i := 3; i >= 1; i-- {
		require.NoError(t, repo.Create(ctx, &project.Project{
			ID:           fmt.Sprintf("p%d", i),
			ProjectNo:    fmt.Sprintf("P-%d", i),
			ProjectName:  "Name",
			CustomerName: "Acme",
		}))
	}
	require.ErrorIs(t, repo.Create(ctx, &project.Project{ID: "p9", ProjectNo: "P-1"}), repository.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "p3", list[0].ID)

	p, err := project.Fields.Compile(map[string]any{"remarks": "rush"})
	require.NoError(t, err)
	updated, err := repo.Update(ctx, "p2", p)
	require.NoError(t, err)
	require.Equal(t, "rush", updated.Remarks)
	require.Equal(t, "P-2", updated.ProjectNo)

	_, err = repo.Update(ctx, "missing", p)
	require.ErrorIs(t, err, repository.ErrNotFound)

	p, err = project.Fields.Compile(map[string]any{"projectNo": "P-1"})
	require.NoError(t, err)
	_, err = repo.Update(ctx, "p2", p)
	require.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, repo.Delete(ctx, "p2"))
	_, err = repo.Get(ctx, "p2")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStageRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &stage.Stage{ID: "s1", Name: "Welding"}))
	p, err := stage.Fields.Compile(map[string]any{"name": "Paint"})
	require.NoError(t, err)
	st, err := repo.Update(ctx, "s1", p)
	require.NoError(t, err)
	require.Equal(t, "Paint", st.Name)

	require.NoError(t, repo.Delete(ctx, "s1"))
	require.ErrorIs(t, repo.Delete(ctx, "s1"), repository.ErrNotFound)
}

func TestActivityRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	id := "p1"
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		EntityType: activity.EntityProject, EntityID: &id,
		ActivityType: activity.TypeProjectCreated, Summary: "created",
	}))
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		EntityType: activity.EntityImport, ActivityType: activity.TypeImportFailed, Summary: "failed",
	}))

	entityType := activity.EntityProject
	entries, err := repo.List(ctx, activity.ListActivityOptions{EntityType: &entityType, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "p1", *entries[0].EntityID)
}
