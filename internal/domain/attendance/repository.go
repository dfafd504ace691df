package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a record. The insert is conditional on the
	// (user_id, date) uniqueness constraint; a collision returns
	// ErrDuplicateDate instead of a second row.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// CreateIfAbsent inserts a record only when no row exists for
	// (user, date) yet. Returns true when a row was inserted. Used by the
	// add-overtime auto-mark rule, where a collision is not an error.
	CreateIfAbsent(ctx context.Context, att Attendance) (bool, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByUserAndMonth returns the user's records inside one calendar
	// month, ordered by date ascending
	ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]Attendance, error)

	// ListByUser returns every record the user ever created, date descending
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	Delete(ctx context.Context, id string) error

	// DeleteByUser removes all of a user's records; used by the cascading
	// account delete inside a transaction
	DeleteByUser(ctx context.Context, userID string) error

	// CountAll returns the total row count across all users
	CountAll(ctx context.Context) (int64, error)
}
