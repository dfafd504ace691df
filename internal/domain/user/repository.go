package user

import (
	"context"
	"time"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new account and returns it with generated fields
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)

	// Count returns the total number of accounts, used for the
	// first-user-becomes-admin bootstrap check
	Count(ctx context.Context) (int64, error)

	// List returns all accounts ordered by creation time
	List(ctx context.Context) ([]User, error)

	UpdateProfile(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// RecordLogin stores last_login and last_ip on successful login only
	RecordLogin(ctx context.Context, id string, at time.Time, ip string) error

	SetBlocked(ctx context.Context, id string, blocked bool) error

	// Delete removes the account row only; dependent rows are deleted by the
	// caller inside the same transaction
	Delete(ctx context.Context, id string) error
}
