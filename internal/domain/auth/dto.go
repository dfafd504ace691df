package auth

import "github.com/timepay/timepay-backend-go/internal/domain/user"

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	EmployeeID      string `json:"employee_id"`
	Designation     string `json:"designation"`
	Department      string `json:"department"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// SessionResponse carries the signed session token. The HTTP layer places
// Token into the session cookie rather than the response body.
type SessionResponse struct {
	Token     string   `json:"-"`
	ExpiresAt int64    `json:"expires_at"`
	User      UserInfo `json:"user"`
}

type UserInfo struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     user.Role `json:"role"`
}

func NewUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
