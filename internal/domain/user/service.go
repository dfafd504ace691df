package user

import "context"

// UserService covers the profile surface.
type UserService interface {
	Profile(ctx context.Context, userID string) (ProfileResponse, error)

	// UpdateProfile replaces the editable profile fields, including the pay
	// parameters future calculations will use
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
}
