package admin

import (
	"context"
	"time"
)

// StatsRepository aggregates account activity for the admin dashboard and
// the user summary report.
type StatsRepository interface {
	// CountUsers returns the total number of accounts
	CountUsers(ctx context.Context) (int64, error)

	// CountUsersActiveOn counts accounts whose last login falls on the
	// given calendar day
	CountUsersActiveOn(ctx context.Context, day time.Time) (int64, error)

	// CountUsersCreatedIn counts accounts created inside one calendar month
	CountUsersCreatedIn(ctx context.Context, year int, month time.Month) (int64, error)

	// SignupsSince returns per-day signup counts from since onward, keyed
	// by YYYY-MM-DD; days without signups are absent from the map
	SignupsSince(ctx context.Context, since time.Time) (map[string]int, error)

	// UserSummaries returns one row per account with lifetime overtime
	// hours and lifetime Present-day counts
	UserSummaries(ctx context.Context) ([]UserSummaryRow, error)
}

// AuditRepository persists admin action records.
type AuditRepository interface {
	Create(ctx context.Context, log AuditLog) error
}
