package response

import (
	"errors"
	"net/http"

	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/auth"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountBlocked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session")
	case errors.Is(err, auth.ErrEmptyPassword):
		BadRequest(w, err.Error(), nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmployeeIDTaken):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, user.ErrSuperAdminProtected):
		Forbidden(w, "Super admin accounts cannot be modified")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrDuplicateDate):
		Conflict(w, err.Error())
	case errors.Is(err, overtime.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrNegativeHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrNotOwner):
		Forbidden(w, "Record belongs to another user")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotOwner):
		Forbidden(w, "Record belongs to another user")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
