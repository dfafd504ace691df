package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestDailyPay(t *testing.T) {
	base, ot, total := DailyPay(30000, 100, attendance.StatusPresent, 5, 30)
	assert.Equal(t, 1000.0, base)
	assert.Equal(t, 500.0, ot)
	assert.Equal(t, 1500.0, total)

	// No base salary on non-Present days
	base, ot, total = DailyPay(30000, 100, attendance.StatusAbsent, 2, 30)
	assert.Equal(t, 0.0, base)
	assert.Equal(t, 200.0, ot)
	assert.Equal(t, 200.0, total)

	base, _, _ = DailyPay(30000, 100, attendance.StatusLeave, 0, 30)
	assert.Equal(t, 0.0, base)

	// Zero divisor guard
	base, _, total = DailyPay(30000, 100, attendance.StatusPresent, 1, 0)
	assert.Equal(t, 0.0, base)
	assert.Equal(t, 100.0, total)
}

// Pay must never decrease when hours or salary increase.
func TestDailyPayMonotone(t *testing.T) {
	_, _, prev := DailyPay(30000, 100, attendance.StatusPresent, 0, 30)
	for hours := 1.0; hours <= 12; hours++ {
		_, _, total := DailyPay(30000, 100, attendance.StatusPresent, hours, 30)
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}

	_, _, prev = DailyPay(0, 100, attendance.StatusPresent, 3, 30)
	for salary := 10000.0; salary <= 100000; salary += 10000 {
		_, _, total := DailyPay(salary, 100, attendance.StatusPresent, 3, 30)
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestSummarizeMonth(t *testing.T) {
	u := user.User{MonthlySalary: 30000, OTRate: 100}

	// April 2024 has 30 days: 10 Present days, 5 OT hours total
	var atts []attendance.Attendance
	for d := 1; d <= 10; d++ {
		atts = append(atts, attendance.Attendance{
			Date:   date(2024, time.April, d),
			Status: attendance.StatusPresent,
		})
	}
	atts = append(atts, attendance.Attendance{
		Date:   date(2024, time.April, 11),
		Status: attendance.StatusLeave,
	})
	ots := []overtime.Overtime{
		{Date: date(2024, time.April, 3), Hours: 2},
		{Date: date(2024, time.April, 7), Hours: 3},
	}

	s := SummarizeMonth(u, ots, atts, 2024, time.April)
	assert.Equal(t, 5.0, s.TotalOTHours)
	assert.Equal(t, 500.0, s.TotalOTMoney)
	assert.Equal(t, 10, s.PresentDays)
	assert.Equal(t, 1000.0, s.DailySalary)
	assert.Equal(t, 10000.0, s.SalaryEarned)
	assert.Equal(t, 10500.0, s.TotalSalary)

	// Sparse series: only days with overtime appear, ascending
	assert.Equal(t, []ChartPoint{
		{Label: "03-04", Hours: 2},
		{Label: "07-04", Hours: 3},
	}, s.Chart)
}

func TestSummarizeMonthUsesRealMonthLength(t *testing.T) {
	u := user.User{MonthlySalary: 31000, OTRate: 0}
	atts := []attendance.Attendance{
		{Date: date(2024, time.January, 2), Status: attendance.StatusPresent},
	}

	s := SummarizeMonth(u, nil, atts, 2024, time.January)
	assert.InDelta(t, 1000.0, s.DailySalary, 1e-9) // 31000 / 31
}

func TestBuildExportReport(t *testing.T) {
	u := user.User{MonthlySalary: 30000, OTRate: 100}

	in := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	out := time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)

	ots := []overtime.Overtime{
		{Date: date(2024, time.March, 5), Hours: 2}, // no attendance row
		{Date: date(2024, time.March, 6), Hours: 1},
	}
	atts := []attendance.Attendance{
		{Date: date(2024, time.March, 6), Status: attendance.StatusPresent, InTime: &in, OutTime: &out},
		{Date: date(2024, time.March, 4), Status: attendance.StatusLeave},
	}

	report := BuildExportReport(u, ots, atts)
	if assert.Len(t, report.Rows, 3) {
		// Union of dates, ascending
		assert.Equal(t, date(2024, time.March, 4), report.Rows[0].Date)
		assert.Equal(t, date(2024, time.March, 5), report.Rows[1].Date)
		assert.Equal(t, date(2024, time.March, 6), report.Rows[2].Date)

		// Overtime with no attendance row defaults to Absent: no base pay
		absent := report.Rows[1]
		assert.Equal(t, attendance.StatusAbsent, absent.Status)
		assert.Equal(t, 0.0, absent.DailyBase)
		assert.Equal(t, 200.0, absent.OTAmount)
		assert.Equal(t, 200.0, absent.TotalDailyPay)

		present := report.Rows[2]
		assert.Equal(t, attendance.StatusPresent, present.Status)
		assert.Equal(t, 1000.0, present.DailyBase)
		assert.Equal(t, 1100.0, present.TotalDailyPay)
	}

	assert.Equal(t, 300.0, report.TotalOTAmount)
	assert.Equal(t, 1400.0, report.TotalPay)
}

// The export report divides by a fixed 30 days while the month summary
// divides by the real month length, so the two agree only for 30-day
// months. This pins the discrepancy down so it cannot change silently.
func TestExportAndSummaryDivisorsDiverge(t *testing.T) {
	u := user.User{MonthlySalary: 31000, OTRate: 0}
	atts := []attendance.Attendance{
		{Date: date(2024, time.January, 2), Status: attendance.StatusPresent},
	}

	s := SummarizeMonth(u, nil, atts, 2024, time.January)
	report := BuildExportReport(u, nil, atts)

	assert.InDelta(t, 1000.0, s.SalaryEarned, 1e-9)                // 31000 / 31
	assert.InDelta(t, 1033.3333, report.Rows[0].DailyBase, 1e-3)   // 31000 / 30
	assert.NotEqual(t, s.SalaryEarned, report.Rows[0].TotalDailyPay)

	// 30-day month: both formulas coincide
	atts[0].Date = date(2024, time.April, 2)
	s = SummarizeMonth(u, nil, atts, 2024, time.April)
	report = BuildExportReport(u, nil, atts)
	assert.InDelta(t, s.SalaryEarned, report.TotalPay, 1e-9)
}
