// Package store opens the configured database backend and exposes its
// repositories.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpggio/stageboard/internal/config"
	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/postgres"
	"github.com/rpggio/stageboard/internal/sqlite"
)

// Store bundles the repositories of one backend.
type Store struct {
	Projects project.Repository
	Stages   stage.Repository
	Activity activity.Repository

	close func()
}

// Close releases the underlying connection.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the backend named by cfg.Driver and applies migrations.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureDBDir(cfg.Path); err != nil {
			return nil, fmt.Errorf("preparing database path: %w", err)
		}
		db, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Projects: sqlite.NewProjectRepository(db),
			Stages:   sqlite.NewStageRepository(db),
			Activity: sqlite.NewActivityRepository(db),
			close:    func() { db.Close() },
		}, nil

	case config.DriverPostgres:
		db, err := postgres.New(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Projects: postgres.NewProjectRepository(db),
			Stages:   postgres.NewStageRepository(db),
			Activity: postgres.NewActivityRepository(db),
			close:    db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
