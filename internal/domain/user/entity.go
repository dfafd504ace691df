package user

import "time"

type Role string

const (
	RoleUser       Role = "user"        // Regular employee account
	RoleAdmin      Role = "admin"       // Reserved admin tier
	RoleSuperAdmin Role = "super_admin" // Full admin surface access
)

type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	EmployeeID    *string
	Designation   *string
	Department    *string
	MonthlySalary float64
	OTRate        float64
	Role          Role
	IsBlocked     bool
	CreatedAt     time.Time
	LastLogin     *time.Time
	LastIP        *string
}

// IsSuperAdmin checks if the user may access the admin surface
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
