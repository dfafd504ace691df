package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/auth"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
	"github.com/timepay/timepay-backend-go/internal/pkg/jwt"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
	"github.com/timepay/timepay-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db database.TxBeginner
	user.UserRepository
	admin.AuditRepository
	jwt.Service
}

func NewAuthService(db database.TxBeginner, userRepository user.UserRepository, auditRepository admin.AuditRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		db:              db,
		UserRepository:  userRepository,
		AuditRepository: auditRepository,
		Service:         jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateRegister(req auth.RegisterRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(req.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 2-20 characters"})
	}
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsValidEmployeeID(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be 2-20 characters"})
	}
	if validator.IsEmpty(req.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if validator.IsEmpty(req.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(req.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if req.Password != req.ConfirmPassword {
		errs = append(errs, validator.ValidationError{Field: "confirm_password", Message: "passwords do not match"})
	}

	return errs
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserInfo, error) {
	if errs := validateRegister(req); len(errs) > 0 {
		return auth.UserInfo{}, errs
	}

	if _, err := a.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return auth.UserInfo{}, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.UserInfo{}, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.UserInfo{}, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.UserInfo{}, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := a.UserRepository.GetByEmployeeID(ctx, req.EmployeeID); err == nil {
		return auth.UserInfo{}, user.ErrEmployeeIDTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.UserInfo{}, fmt.Errorf("failed to check employee id: %w", err)
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserInfo{}, fmt.Errorf("failed to hash password: %w", err)
	}

	count, err := a.UserRepository.Count(ctx)
	if err != nil {
		return auth.UserInfo{}, fmt.Errorf("failed to count users: %w", err)
	}

	// The first account ever registered bootstraps the admin surface
	role := user.RoleUser
	if count == 0 {
		role = user.RoleSuperAdmin
	}

	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		EmployeeID:   &req.EmployeeID,
		Designation:  &req.Designation,
		Department:   &req.Department,
		Role:         role,
	}
	newUser, err = a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.UserInfo{}, err
	}

	return auth.NewUserInfo(newUser), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, ip string) (auth.SessionResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SessionResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SessionResponse{}, auth.ErrInvalidCredentials
	}

	if userData.IsBlocked {
		return auth.SessionResponse{}, auth.ErrAccountBlocked
	}

	token, expiresAt, err := a.Service.GenerateSessionToken(userData, "")
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	// Recorded on successful logins only; failed attempts above return early
	if err := a.UserRepository.RecordLogin(ctx, userData.ID, time.Now(), ip); err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to record login: %w", err)
	}

	return auth.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.NewUserInfo(userData),
	}, nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if validator.IsEmpty(req.NewPassword) {
		return auth.ErrEmptyPassword
	}

	hashedPassword, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.UserRepository.UpdatePassword(ctx, userID, hashedPassword)
}

// Impersonate implements auth.AuthService. The issued session belongs to
// the target user; the admin identity survives only in the audit record
// and the impersonator_id claim.
func (a *AuthServiceImpl) Impersonate(ctx context.Context, adminID, targetUserID string) (auth.SessionResponse, error) {
	target, err := a.UserRepository.GetByID(ctx, targetUserID)
	if err != nil {
		return auth.SessionResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateSessionToken(target, adminID)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	if err := a.AuditRepository.Create(ctx, admin.AuditLog{
		AdminID:      adminID,
		TargetUserID: targetUserID,
		Action:       admin.ActionImpersonate,
	}); err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.NewUserInfo(target),
	}, nil
}

// SeedSuperAdmin creates the configured super admin account when it does
// not exist yet. Called once at startup.
func (a *AuthServiceImpl) SeedSuperAdmin(ctx context.Context, email, password string) error {
	if _, err := a.UserRepository.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}

	hashedPassword, err := a.hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	employeeID := "ADMIN001"
	designation := "System Administrator"
	department := "IT"

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, err := a.UserRepository.Create(txCtx, user.User{
			Username:      "Admin",
			Email:         email,
			PasswordHash:  hashedPassword,
			EmployeeID:    &employeeID,
			Designation:   &designation,
			Department:    &department,
			MonthlySalary: 50000,
			OTRate:        200,
			Role:          user.RoleSuperAdmin,
		})
		return err
	})
}
