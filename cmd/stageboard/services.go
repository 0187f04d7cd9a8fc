package main

import (
	"log/slog"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/store"
)

type services struct {
	projects *project.Service
	stages   *stage.Service
	activity *activity.Service
	importer *importer.Pipeline
}

func newServices(st *store.Store, logger *slog.Logger) services {
	projects := project.NewService(st.Projects, st.Activity, logger)
	return services{
		projects: projects,
		stages:   stage.NewService(st.Stages, st.Activity, logger),
		activity: activity.NewService(st.Activity, logger),
		importer: importer.NewPipeline(projects, st.Activity, logger),
	}
}
