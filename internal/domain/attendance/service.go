package attendance

import "context"

// AttendanceService covers the attendance timesheet operations.
type AttendanceService interface {
	// Add records one day's attendance for a past-or-today date
	Add(ctx context.Context, userID string, req AddAttendanceRequest) (AttendanceResponse, error)

	// List returns every record the caller ever created, latest first
	List(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// Delete removes one of the caller's own records
	Delete(ctx context.Context, userID, attendanceID string) error
}
