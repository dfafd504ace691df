package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// ValidStatus reports whether s is one of the three allowed states.
func ValidStatus(s Status) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLeave
}

// Attendance is a per-day attendance fact owned by a single user.
// At most one record may exist per (user, date). It shares only the date
// with any Overtime record for the same day; there is no direct link.
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	Status    Status
	InTime    *time.Time
	OutTime   *time.Time
	CreatedAt time.Time
}
