package transport

import (
	"net/http"
	"strconv"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/listing"
)

// DashboardResponse is the stage overview.
type DashboardResponse struct {
	Total    int                  `json:"total"`
	Counts   []listing.StageCount `json:"counts"`
	Selected string               `json:"selected,omitempty"`
	Projects []project.Project    `json:"projects,omitempty"`
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projects, err := s.services.Projects.List(ctx)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	stages, err := s.services.Stages.List(ctx)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	var sel listing.Selection
	sel.Toggle(r.URL.Query().Get("selected"))

	writeJSON(w, http.StatusOK, DashboardResponse{
		Total:    len(projects),
		Counts:   listing.StageCounts(projects, stages),
		Selected: sel.Selected(),
		Projects: sel.Projects(projects),
	})
}

func (s *Server) listActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts activity.ListActivityOptions
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, s.logger, errBadRequest)
			return
		}
		opts.Limit = n
	}
	if raw := q.Get("entityType"); raw != "" {
		entityType := activity.EntityType(raw)
		opts.EntityType = &entityType
	}

	entries, err := s.services.Activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
