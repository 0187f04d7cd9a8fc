package stage

import (
	"context"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/patch"
)

// Repository provides persistence for stages.
type Repository interface {
	Create(ctx context.Context, st *Stage) error
	Get(ctx context.Context, id string) (*Stage, error)
	List(ctx context.Context) ([]Stage, error)
	Update(ctx context.Context, id string, p patch.Patch) (*Stage, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository logs stage activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
