package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/patch"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrDuplicateNumber):
		return &APIError{Code: "DUPLICATE_PROJECT_NUMBER", Message: project.DuplicateMessage, RecoveryHint: "Choose another projectNo or call check_project_number"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the id with list_projects"}
	case errors.Is(err, stage.ErrStageNotFound):
		return &APIError{Code: "STAGE_NOT_FOUND", Message: "stage not found", RecoveryHint: "Check the id with list_stages"}
	case errors.Is(err, patch.ErrNoValidFields):
		return &APIError{Code: "NO_VALID_FIELDS", Message: "No valid fields to update.", RecoveryHint: "Send at least one known field"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, stage.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, importer.ErrEmptyImport):
		return &APIError{Code: "EMPTY_IMPORT", Message: "The file is empty or has no data."}
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return &APIError{Code: "UNSUPPORTED_FORMAT", Message: err.Error(), RecoveryHint: "Use xlsx or csv"}
	default:
		return nil
	}
}

// toolError returns the mapped APIError for err, or err itself.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
