package user

import "errors"

// User domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("that username is taken")
	ErrEmailTaken          = errors.New("that email is taken")
	ErrEmployeeIDTaken     = errors.New("that employee id is already registered")
	ErrSuperAdminProtected = errors.New("cannot modify super admin account")
)
