package project

import (
	"context"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/patch"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, id string, p patch.Patch) (*Project, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository logs project activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
