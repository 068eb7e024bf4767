package response

import (
	"errors"
	"net/http"

	"github.com/shiftline/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/shift"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Permission errors
	case errors.Is(err, worker.ErrCapabilityRequired):
		Forbidden(w, "Insufficient permissions for this operation")
	case errors.Is(err, punch.ErrNotPunchOwner):
		Forbidden(w, "Only the punch owner may clock out")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, worker.ErrPINExists):
		Conflict(w, "PIN already assigned to another worker")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, punch.ErrOpenPunchExists):
		Conflict(w, "An open punch already exists")
	case errors.Is(err, punch.ErrPunchAlreadyClosed):
		Conflict(w, "Punch is already clocked out")
	case errors.Is(err, punch.ErrClockOutBeforeClockIn):
		ValidationError(w, map[string]string{"clock_out": "clock-out must not be before clock-in"})

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
