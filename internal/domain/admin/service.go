package admin

import "context"

// AdminService covers the admin dashboard and user management actions.
type AdminService interface {
	// Dashboard assembles the platform stats, the signup chart and the
	// full user list
	Dashboard(ctx context.Context) (DashboardResponse, error)

	// DeleteUser removes an account together with all of its overtime and
	// attendance records in one transaction. Super admin accounts cannot
	// be deleted.
	DeleteUser(ctx context.Context, targetUserID string) error

	// ToggleUserBlocked flips the login block on an account and returns
	// the new state. Super admin accounts cannot be blocked.
	ToggleUserBlocked(ctx context.Context, targetUserID string) (bool, error)
}
