package admin

import (
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

// SignupPoint is one day in the dense 30-day signup histogram. Unlike the
// overtime chart, every calendar day appears, zero-filled.
type SignupPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Signups int    `json:"signups"`
}

// DashboardStats are the admin dashboard aggregate figures.
type DashboardStats struct {
	TotalUsers       int64         `json:"total_users"`
	ActiveUsersToday int64         `json:"active_users_today"`
	TotalRecords     int64         `json:"total_records"`
	NewUsersMonth    int64         `json:"new_users_month"`
	SignupChart      []SignupPoint `json:"signup_chart"`
}

// DashboardResponse combines the stats with the full user list.
type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
	Users []UserItem     `json:"users"`
}

type UserItem struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      user.Role  `json:"role"`
	IsBlocked bool       `json:"is_blocked"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	LastIP    *string    `json:"last_ip,omitempty"`
}

// UserSummaryRow is one line of the admin user summary report: lifetime
// overtime hours and lifetime Present-day count per account. No payroll
// figures are derived here.
type UserSummaryRow struct {
	Username     string
	Email        string
	Role         user.Role
	IsBlocked    bool
	CreatedAt    time.Time
	TotalOTHours float64
	PresentDays  int64
}

// AuditLog records an admin action against another account.
type AuditLog struct {
	ID           string
	AdminID      string
	TargetUserID string
	Action       string
	CreatedAt    time.Time
}

const ActionImpersonate = "impersonate"
