package payroll

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

func day(d int) time.Time {
	return time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthReport(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	ots := fixtures.NewFakeOvertimeRepository()
	atts := fixtures.NewFakeAttendanceRepository()
	svc := NewPayrollService(users, ots, atts)

	u, err := users.Create(context.Background(), user.User{
		Username:      "john",
		Email:         "john@example.com",
		MonthlySalary: 30000,
		OTRate:        100,
	})
	require.NoError(t, err)

	for d := 1; d <= 10; d++ {
		_, err := atts.Create(context.Background(), attendance.Attendance{
			UserID: u.ID, Date: day(d), Status: attendance.StatusPresent,
		})
		require.NoError(t, err)
	}
	_, err = ots.Create(context.Background(), overtime.Overtime{UserID: u.ID, Date: day(3), Hours: 2})
	require.NoError(t, err)
	_, err = ots.Create(context.Background(), overtime.Overtime{UserID: u.ID, Date: day(7), Hours: 3})
	require.NoError(t, err)

	// A record in another month must not leak in
	_, err = ots.Create(context.Background(), overtime.Overtime{
		UserID: u.ID, Date: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), Hours: 8,
	})
	require.NoError(t, err)

	report, err := svc.MonthReport(context.Background(), u.ID, 2024, time.April)
	require.NoError(t, err)

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 4, report.Month)
	assert.InDelta(t, 5.0, report.Summary.TotalOTHours, 1e-9)
	assert.InDelta(t, 500.0, report.Summary.TotalOTMoney, 1e-9)
	assert.Equal(t, 10, report.Summary.PresentDays)
	assert.InDelta(t, 1000.0, report.Summary.DailySalary, 1e-9)
	assert.InDelta(t, 10500.0, report.Summary.TotalSalary, 1e-9)

	assert.Len(t, report.Overtimes, 2)
	assert.Len(t, report.Attendances, 10)
	assert.Equal(t, "2024-04-03", report.Overtimes[0].Date)
}

func TestMonthReportUnknownUser(t *testing.T) {
	svc := NewPayrollService(fixtures.NewFakeUserRepository(), fixtures.NewFakeOvertimeRepository(), fixtures.NewFakeAttendanceRepository())

	_, err := svc.MonthReport(context.Background(), "missing", 2024, time.April)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMonthReportEmptyMonth(t *testing.T) {
	users := fixtures.NewFakeUserRepository()
	svc := NewPayrollService(users, fixtures.NewFakeOvertimeRepository(), fixtures.NewFakeAttendanceRepository())

	u, err := users.Create(context.Background(), user.User{
		Username: "john", Email: "john@example.com", MonthlySalary: 30000, OTRate: 100,
	})
	require.NoError(t, err)

	report, err := svc.MonthReport(context.Background(), u.ID, 2024, time.February)
	require.NoError(t, err)

	assert.Zero(t, report.Summary.TotalSalary)
	assert.Empty(t, report.Summary.Chart)
	assert.Empty(t, report.Overtimes)
	// February 2024 had 29 days
	assert.InDelta(t, 30000.0/29.0, report.Summary.DailySalary, 1e-9)
}
