package overtime

import "time"

// Overtime is a per-day overtime fact owned by a single user.
// At most one record may exist per (user, date).
type Overtime struct {
	ID        string
	UserID    string
	Date      time.Time
	Hours     float64
	CreatedAt time.Time
}
