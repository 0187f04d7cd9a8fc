package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestStageRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &stage.Stage{ID: "s2", Name: "Welding"}))
	require.NoError(t, repo.Create(ctx, &stage.Stage{ID: "s1", Name: "Paint", Remarks: "booth B"}))

	stages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []stage.Stage{
		{ID: "s2", Name: "Welding"},
		{ID: "s1", Name: "Paint", Remarks: "booth B"},
	}, stages)

	p, err := stage.Fields.Compile(map[string]any{"remarks": "booth C"})
	require.NoError(t, err)
	updated, err := repo.Update(ctx, "s1", p)
	require.NoError(t, err)
	require.Equal(t, &stage.Stage{ID: "s1", Name: "Paint", Remarks: "booth C"}, updated)

	_, err = repo.Update(ctx, "missing", p)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "s1"), repository.ErrNotFound)
}

func TestStageRepository_DeleteLeavesProjectStage(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	stages := NewStageRepository(db)
	projects := NewProjectRepository(db)

	require.NoError(t, stages.Create(ctx, &stage.Stage{ID: "s1", Name: "Paint"}))
	require.NoError(t, projects.Create(ctx, newProject("p1", "P-1")))
	p, err := projects.Get(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, stages.Delete(ctx, "s1"))

	after, err := projects.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, p.ProductionStage, after.ProductionStage)
}
