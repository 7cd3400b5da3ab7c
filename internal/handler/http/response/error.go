package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/domain/auth"
	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
	"github.com/workpulse/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Leave rejections carry their own client-facing message
	var invalidLeave *leave.InvalidRequestError
	if errors.As(err, &invalidLeave) {
		BadRequest(w, invalidLeave.Message, nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin role required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrActiveSessionExists):
		Conflict(w, "An attendance session is already open")
	case errors.Is(err, attendance.ErrNoActiveSession):
		NotFound(w, "No open attendance session")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrSessionAlreadyClosed):
		Conflict(w, "Attendance session already checked out")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Attendance adjustment not found")
	case errors.Is(err, adjustment.ErrAlreadyProcessed):
		Conflict(w, "Attendance adjustment already processed")
	case errors.Is(err, adjustment.ErrInvalidTimeRange):
		BadRequest(w, "Requested check-out must be after requested check-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
