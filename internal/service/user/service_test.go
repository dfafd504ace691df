package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/fixtures"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
)

func seedUser(t *testing.T, users *fixtures.FakeUserRepository, username, email, employeeID string) user.User {
	t.Helper()
	u, err := users.Create(context.Background(), user.User{
		Username:      username,
		Email:         email,
		EmployeeID:    &employeeID,
		MonthlySalary: 30000,
		OTRate:        100,
		Role:          user.RoleUser,
	})
	require.NoError(t, err)
	return u
}

func updateRequest() user.UpdateProfileRequest {
	return user.UpdateProfileRequest{
		Username:      "john",
		Email:         "john@example.com",
		EmployeeID:    "EMP001",
		Designation:   "Engineer",
		Department:    "Platform",
		MonthlySalary: 45000,
		OTRate:        150,
	}
}

func TestProfile(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")

	profile, err := svc.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", profile.Username)
	assert.Equal(t, 30000.0, profile.MonthlySalary)
}

func TestProfileUnknownUser(t *testing.T) {
	svc := NewUserService(fixtures.NewFakeUserRepository())

	_, err := svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfileChangesPayParameters(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")

	profile, err := svc.UpdateProfile(context.Background(), u.ID, updateRequest())
	require.NoError(t, err)
	assert.Equal(t, 45000.0, profile.MonthlySalary)
	assert.Equal(t, 150.0, profile.OTRate)

	stored, err := users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, stored.MonthlySalary)
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")
	seedUser(t, users, "jane", "jane@example.com", "EMP002")

	req := updateRequest()
	req.Username = "jane"
	_, err := svc.UpdateProfile(context.Background(), u.ID, req)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")
	seedUser(t, users, "jane", "jane@example.com", "EMP002")

	req := updateRequest()
	req.Email = "jane@example.com"
	_, err := svc.UpdateProfile(context.Background(), u.ID, req)
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestUpdateProfileKeepingOwnIdentity(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")

	// Re-submitting one's own username, email and employee id is not a conflict
	_, err := svc.UpdateProfile(context.Background(), u.ID, updateRequest())
	assert.NoError(t, err)
}

func TestUpdateProfileValidation(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewUserService(users)
	u := seedUser(t, users, "john", "john@example.com", "EMP001")

	req := updateRequest()
	req.Email = "nope"
	req.MonthlySalary = -5

	_, err := svc.UpdateProfile(context.Background(), u.ID, req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "monthly_salary")
}
