package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/auth"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/fixtures"
	"github.com/timepay/timepay-backend-go/internal/pkg/jwt"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (*AuthServiceImpl, *fixtures.FakeUserRepository, *fixtures.FakeAuditRepository) {
	users := fixtures.NewFakeUserRepository()
	audits := &fixtures.FakeAuditRepository{}
	jwtService := jwt.NewJWTService("test-secret-key", "24h")
	return NewAuthService(&fixtures.FakeTxBeginner{}, users, audits, jwtService), users, audits
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Username:        "john",
		Email:           "john@example.com",
		EmployeeID:      "EMP001",
		Designation:     "Engineer",
		Department:      "Platform",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterFirstUserBecomesSuperAdmin(t *testing.T) {
	svc, _, _ := newTestService()

	info, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, info.Role)

	second := registerRequest()
	second.Username = "jane"
	second.Email = "jane@example.com"
	second.EmployeeID = "EMP002"

	info, err = svc.Register(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, info.Role)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "other@example.com"
	dup.EmployeeID = "EMP009"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)

	dup = registerRequest()
	dup.Username = "other"
	dup.EmployeeID = "EMP009"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	dup = registerRequest()
	dup.Username = "other"
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, user.ErrEmployeeIDTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()

	req := registerRequest()
	req.Email = "not-an-email"
	req.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "confirm_password")
}

func TestLoginSuccessRecordsLastLogin(t *testing.T) {
	svc, users, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "john@example.com",
		Password: "secret123",
	}, "203.0.113.7")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "john", resp.User.Username)

	stored, err := users.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	require.NotNil(t, stored.LastIP)
	assert.Equal(t, "203.0.113.7", *stored.LastIP)
}

func TestLoginWrongPasswordLeavesNoTrace(t *testing.T) {
	svc, users, _ := newTestService()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	stored, err := users.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin)
	assert.Nil(t, stored.LastIP)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	}, "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginBlockedAccount(t *testing.T) {
	svc, users, _ := newTestService()

	info, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NoError(t, users.SetBlocked(context.Background(), info.ID, true))

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "john@example.com",
		Password: "secret123",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, auth.ErrAccountBlocked)

	stored, err := users.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin)
}

func TestChangePassword(t *testing.T) {
	svc, users, _ := newTestService()

	info, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), info.ID, auth.ChangePasswordRequest{NewPassword: "newsecret"})
	require.NoError(t, err)

	stored, err := users.GetByID(context.Background(), info.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")))
}

func TestChangePasswordRejectsEmpty(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.ChangePassword(context.Background(), "whatever", auth.ChangePasswordRequest{NewPassword: "  "})
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestImpersonateIssuesTargetSessionAndAudits(t *testing.T) {
	svc, _, audits := newTestService()

	adminInfo, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.Username = "jane"
	second.Email = "jane@example.com"
	second.EmployeeID = "EMP002"
	targetInfo, err := svc.Register(context.Background(), second)
	require.NoError(t, err)

	resp, err := svc.Impersonate(context.Background(), adminInfo.ID, targetInfo.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", resp.User.Username)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, audits.Logs, 1)
	assert.Equal(t, adminInfo.ID, audits.Logs[0].AdminID)
	assert.Equal(t, targetInfo.ID, audits.Logs[0].TargetUserID)
	assert.Equal(t, admin.ActionImpersonate, audits.Logs[0].Action)
}

func TestImpersonateUnknownTarget(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Impersonate(context.Background(), "admin-id", "missing-id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSeedSuperAdmin(t *testing.T) {
	svc, users, _ := newTestService()

	err := svc.SeedSuperAdmin(context.Background(), "root@example.com", "bootpass")
	require.NoError(t, err)

	seeded, err := users.GetByEmail(context.Background(), "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, seeded.Role)

	// Second run is a no-op
	require.NoError(t, svc.SeedSuperAdmin(context.Background(), "root@example.com", "bootpass"))
	count, err := users.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
