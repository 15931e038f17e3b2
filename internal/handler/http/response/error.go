package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth),
		errors.Is(err, report.ErrInvalidYear):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrEmptyRoster):
		NotFound(w, "No employees found for the requested period")
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	// Engine errors
	case errors.Is(err, reconcile.ErrInvalidConfiguration):
		InternalServerError(w, "Attendance engine is misconfigured")
	case errors.Is(err, reconcile.ErrEmptyRoster):
		NotFound(w, "No employees found for the requested period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
