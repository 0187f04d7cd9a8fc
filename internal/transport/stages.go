package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/stageboard/internal/domain/stage"
)

func (s *Server) listStages(w http.ResponseWriter, r *http.Request) {
	stages, err := s.services.Stages.List(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

func (s *Server) getStage(w http.ResponseWriter, r *http.Request) {
	st, err := s.services.Stages.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) createStage(w http.ResponseWriter, r *http.Request) {
	var req stage.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	st, err := s.services.Stages.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) updateStage(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	st, err := s.services.Stages.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) deleteStage(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Stages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
