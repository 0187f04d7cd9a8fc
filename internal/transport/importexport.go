package transport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/listing"
)

const (
	maxImportBody = 32 << 20
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ImportFailure is the 422 body for an import stopped by a row.
type ImportFailure struct {
	Error  string          `json:"error"`
	Report importer.Report `json:"report"`
}

func (s *Server) importProjects(w http.ResponseWriter, r *http.Request) {
	body, filename, contentType, err := importUpload(w, r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	defer body.Close()

	var format importer.Format
	if name := r.URL.Query().Get("format"); name != "" {
		format, err = importer.ParseFormat(name)
	} else {
		format, err = importer.DetectFormat(filename, contentType)
	}
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	rows, err := importer.Parse(body, format)
	if err != nil {
		if !errors.Is(err, importer.ErrEmptyImport) && !errors.Is(err, importer.ErrUnsupportedFormat) {
			err = fmt.Errorf("%w: %w", errBadRequest, err)
		}
		writeError(w, r, s.logger, err)
		return
	}

	report, err := s.services.Importer.Run(r.Context(), rows)
	if err != nil {
		var rowErr *importer.RowError
		if errors.As(err, &rowErr) {
			writeJSON(w, http.StatusUnprocessableEntity, ImportFailure{Error: rowErr.Error(), Report: report})
			return
		}
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// importUpload returns the uploaded file from a multipart "file" field or,
// for any other request, the raw body.
func importUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBody)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", "", fmt.Errorf("%w: %w", errBadRequest, err)
		}
		return file, header.Filename, header.Header.Get("Content-Type"), nil
	}
	return r.Body, r.URL.Query().Get("filename"), contentType, nil
}

func (s *Server) exportProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.services.Projects.List(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := importer.WriteProjects(&buf, listing.Apply(projects, criteriaFromQuery(r))); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeWorkbook(w, "ProjectList.xlsx", buf.Bytes())
}

func (s *Server) exportTemplate(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := importer.WriteTemplate(&buf); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeWorkbook(w, "Project_Template.xlsx", buf.Bytes())
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
