package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("login unsuccessful, please check email and password")
	ErrAccountBlocked     = errors.New("your account has been blocked, please contact admin")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)
