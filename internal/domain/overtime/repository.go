package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access methods for overtime records.
type OvertimeRepository interface {
	// Create inserts a record. The insert is conditional on the
	// (user_id, date) uniqueness constraint; a collision returns
	// ErrDuplicateDate instead of a second row.
	Create(ctx context.Context, ot Overtime) (Overtime, error)

	GetByID(ctx context.Context, id string) (Overtime, error)

	// ListByUserAndMonth returns the user's records inside one calendar
	// month, ordered by date ascending
	ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]Overtime, error)

	// ListByUser returns every record the user ever created, date ascending
	ListByUser(ctx context.Context, userID string) ([]Overtime, error)

	Delete(ctx context.Context, id string) error

	// DeleteByUser removes all of a user's records; used by the cascading
	// account delete inside a transaction
	DeleteByUser(ctx context.Context, userID string) error

	// CountAll returns the total row count across all users
	CountAll(ctx context.Context) (int64, error)
}
