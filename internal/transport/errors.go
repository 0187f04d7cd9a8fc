package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/patch"
)

var errBadRequest = errors.New("bad request")

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	var rowErr *importer.RowError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &rowErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, project.ErrDuplicateNumber):
		return http.StatusConflict
	case errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, stage.ErrStageNotFound):
		return http.StatusNotFound
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, stage.ErrInvalidInput),
		errors.Is(err, patch.ErrNoValidFields),
		errors.Is(err, importer.ErrEmptyImport),
		errors.Is(err, importer.ErrUnsupportedFormat),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError writes err as a JSON error body. Internal failures are logged
// and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	switch {
	case status == http.StatusInternalServerError:
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		resp.Error = "internal error"
	case errors.Is(err, project.ErrDuplicateNumber):
		resp.Error = project.DuplicateMessage
		resp.Details = err.Error()
	}

	writeJSON(w, status, resp)
}
