package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	projectID := "p1"
	entry1 := &activity.ActivityEntry{
		EntityType:   activity.EntityProject,
		EntityID:     &projectID,
		ActivityType: activity.TypeProjectCreated,
		Summary:      "created project P-1",
	}
	entry2 := &activity.ActivityEntry{
		EntityType:   activity.EntityImport,
		ActivityType: activity.TypeImportSucceeded,
		Summary:      "imported 3 projects",
	}

	require.NoError(t, repo.Log(ctx, entry1))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)

	entries, err := repo.List(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.ActivityType, entries[0].ActivityType)
	require.Nil(t, entries[0].EntityID)
	require.Equal(t, entry1.ActivityType, entries[1].ActivityType)
	require.Equal(t, "p1", *entries[1].EntityID)
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	stageID := "s1"
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		EntityType: activity.EntityStage, EntityID: &stageID,
		ActivityType: activity.TypeStageCreated, Summary: "created",
	}))
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		EntityType: activity.EntityStage, EntityID: &stageID,
		ActivityType: activity.TypeStageUpdated, Summary: "updated",
	}))
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		EntityType: activity.EntityImport, ActivityType: activity.TypeImportFailed, Summary: "failed",
	}))

	entityType := activity.EntityStage
	entries, err := repo.List(ctx, activity.ListActivityOptions{EntityType: &entityType})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	activityType := activity.TypeImportFailed
	entries, err = repo.List(ctx, activity.ListActivityOptions{ActivityType: &activityType})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Offset: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
