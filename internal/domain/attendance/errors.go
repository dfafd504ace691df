package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateDate      = errors.New("attendance for this date already exists")
	ErrFutureDate         = errors.New("cannot select a future date")
	ErrInvalidStatus      = errors.New("status must be Present, Absent or Leave")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotOwner           = errors.New("attendance record belongs to another user")
)
