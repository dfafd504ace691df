package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/fixtures"
)

type testEnv struct {
	svc   *AdminServiceImpl
	users *fixtures.FakeUserRepository
	ots   *fixtures.FakeOvertimeRepository
	atts  *fixtures.FakeAttendanceRepository
	stats *fixtures.FakeStatsRepository
	db    *fixtures.FakeTxBeginner
}

func newTestEnv() testEnv {
	env := testEnv{
		users: fixtures.NewFakeUserRepository(),
		ots:   fixtures.NewFakeOvertimeRepository(),
		atts:  fixtures.NewFakeAttendanceRepository(),
		stats: &fixtures.FakeStatsRepository{},
		db:    &fixtures.FakeTxBeginner{},
	}
	env.svc = NewAdminService(env.db, env.users, env.ots, env.atts, env.stats)
	return env
}

func (e testEnv) seedUser(t *testing.T, username string, role user.Role) user.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), user.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestDashboard(t *testing.T) {
	env := newTestEnv()
	env.seedUser(t, "root", user.RoleSuperAdmin)
	env.seedUser(t, "john", user.RoleUser)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	_, err := env.ots.Create(context.Background(), overtime.Overtime{UserID: "user-2", Date: yesterday, Hours: 2})
	require.NoError(t, err)
	_, err = env.atts.Create(context.Background(), attendance.Attendance{UserID: "user-2", Date: yesterday, Status: attendance.StatusPresent})
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	env.stats.TotalUsers = 2
	env.stats.ActiveToday = 1
	env.stats.CreatedInMonth = 2
	env.stats.Signups = map[string]int{today: 2}

	resp, err := env.svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, resp.Stats.TotalUsers)
	assert.EqualValues(t, 1, resp.Stats.ActiveUsersToday)
	assert.EqualValues(t, 2, resp.Stats.NewUsersMonth)
	assert.EqualValues(t, 2, resp.Stats.TotalRecords)
	assert.Len(t, resp.Users, 2)

	// The signup chart is dense: every day of the window, zeros included
	require.Len(t, resp.Stats.SignupChart, 30)
	last := resp.Stats.SignupChart[len(resp.Stats.SignupChart)-1]
	assert.Equal(t, today, last.Date)
	assert.Equal(t, 2, last.Signups)
	assert.Equal(t, 0, resp.Stats.SignupChart[0].Signups)
}

func TestDeleteUserCascades(t *testing.T) {
	env := newTestEnv()
	target := env.seedUser(t, "john", user.RoleUser)

	date := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
	_, err := env.ots.Create(context.Background(), overtime.Overtime{UserID: target.ID, Date: date, Hours: 2})
	require.NoError(t, err)
	_, err = env.atts.Create(context.Background(), attendance.Attendance{UserID: target.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteUser(context.Background(), target.ID))

	_, err = env.users.GetByID(context.Background(), target.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, env.ots.Records)
	assert.Empty(t, env.atts.Records)
	assert.True(t, env.db.LastTx.Committed)
}

func TestDeleteUserProtectsSuperAdmin(t *testing.T) {
	env := newTestEnv()
	root := env.seedUser(t, "root", user.RoleSuperAdmin)

	err := env.svc.DeleteUser(context.Background(), root.ID)
	assert.ErrorIs(t, err, user.ErrSuperAdminProtected)

	_, err = env.users.GetByID(context.Background(), root.ID)
	assert.NoError(t, err)
}

func TestDeleteUserUnknownTarget(t *testing.T) {
	env := newTestEnv()

	err := env.svc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestToggleUserBlocked(t *testing.T) {
	env := newTestEnv()
	target := env.seedUser(t, "john", user.RoleUser)

	blocked, err := env.svc.ToggleUserBlocked(context.Background(), target.ID)
	require.NoError(t, err)
	assert.True(t, blocked)
	stored, err := env.users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsBlocked)

	blocked, err = env.svc.ToggleUserBlocked(context.Background(), target.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
	stored, err = env.users.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsBlocked)
}

func TestToggleUserBlockedProtectsSuperAdmin(t *testing.T) {
	env := newTestEnv()
	root := env.seedUser(t, "root", user.RoleSuperAdmin)

	_, err := env.svc.ToggleUserBlocked(context.Background(), root.ID)
	assert.ErrorIs(t, err, user.ErrSuperAdminProtected)
}
