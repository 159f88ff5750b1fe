package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string   `json:"code"`
	Message      string   `json:"message"`
	Notices      []string `json:"notices,omitempty"`
	RecoveryHint string   `json:"recovery_hint,omitempty"`
	cause        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	apiErr := &APIError{Message: err.Error(), cause: err}
	switch {
	case errors.Is(err, project.ErrCoolingDown):
		apiErr.Code, apiErr.RecoveryHint = "COOLING_DOWN", "Wait for the cooldown to end before generating again"
	case errors.Is(err, project.ErrCreateInProgress):
		apiErr.Code, apiErr.RecoveryHint = "CREATE_IN_PROGRESS", "Wait for the running generation to finish"
	case errors.Is(err, project.ErrParse):
		apiErr.Code, apiErr.RecoveryHint = "PARSE_ERROR", "Pass the exact JSON produced by export_project"
	case errors.Is(err, project.ErrInvalidStructure):
		apiErr.Code, apiErr.RecoveryHint = "INVALID_STRUCTURE", "The document needs title, outline, chapters and authorInfo"
	case errors.Is(err, project.ErrGeneration):
		apiErr.Code, apiErr.RecoveryHint = "GENERATION_FAILED", "Check the generator configuration and retry later"
	case errors.Is(err, project.ErrExport):
		apiErr.Code, apiErr.RecoveryHint = "EXPORT_FAILED", "Check the export directory is writable"
	case errors.Is(err, project.ErrNoDocument):
		apiErr.Code, apiErr.RecoveryHint = "NO_PROJECT", "Create or import a project first"
	case errors.Is(err, project.ErrPersist):
		apiErr.Code, apiErr.RecoveryHint = "PERSIST_FAILED", "The change is active in memory but was not saved"
	case errors.Is(err, activity.ErrInvalidInput):
		apiErr.Code = "INVALID_INPUT"
	default:
		apiErr.Code = "INTERNAL"
	}
	return apiErr
}

func withNotices(err *APIError, ix *interaction) *APIError {
	if err != nil && ix != nil {
		err.Notices = ix.Notices()
	}
	return err
}
