package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/listing"
)

// criteriaFromQuery reads the list filters from the query string.
func criteriaFromQuery(r *http.Request) listing.Criteria {
	q := r.URL.Query()
	return listing.Criteria{
		Stage:         q.Get("stage"),
		ProjectNo:     q.Get("projectNo"),
		Customer:      q.Get("customer"),
		Owner:         q.Get("owner"),
		DispatchMonth: q.Get("dispatchMonth"),
	}
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, s.logger, errBadRequest)
			return
		}
		page = n
	}

	projects, err := s.services.Projects.List(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listing.Query(projects, criteriaFromQuery(r), page, s.pageSize))
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.services.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	proj, err := s.services.Projects.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	proj, err := s.services.Projects.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkProjectNumber(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	check, err := s.services.Projects.CheckNumber(r.Context(), q.Get("projectNo"), q.Get("excludeId"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}
