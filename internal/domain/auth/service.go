package auth

import "context"

// AuthService covers account registration and session lifecycle.
type AuthService interface {
	// Register creates an account; the first account ever created is
	// promoted to super_admin
	Register(ctx context.Context, req RegisterRequest) (UserInfo, error)

	// Login verifies credentials, rejects blocked accounts and records
	// last_login plus the caller IP on success only
	Login(ctx context.Context, req LoginRequest, ip string) (SessionResponse, error)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error

	// Impersonate issues a session for the target user on behalf of an
	// admin, writing an audit record of the switch
	Impersonate(ctx context.Context, adminID, targetUserID string) (SessionResponse, error)
}
