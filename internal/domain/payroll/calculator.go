package payroll

import (
	"sort"
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

// ExportDaysDivisor is the fixed per-month day count used by the export
// reports. The dashboard and history views divide by the real length of the
// selected month instead; the two deliberately disagree for months that do
// not have 30 days. Kept as-is pending a product decision.
const ExportDaysDivisor = 30

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DailyPay derives one day's pay figures from the user's pay parameters,
// the day's attendance status and overtime hours. The base salary portion
// is earned only on Present days. A non-positive divisor yields a zero
// base rather than a division error.
func DailyPay(monthlySalary, otRate float64, status attendance.Status, otHours float64, daysDivisor int) (dailyBase, otAmount, totalDailyPay float64) {
	otAmount = otHours * otRate
	if status == attendance.StatusPresent && daysDivisor > 0 {
		dailyBase = monthlySalary / float64(daysDivisor)
	}
	totalDailyPay = dailyBase + otAmount
	return dailyBase, otAmount, totalDailyPay
}

// ChartPoint is one day's overtime hours for the dashboard chart. Days
// without overtime produce no point; the series is sparse.
type ChartPoint struct {
	Label string  `json:"label"` // DD-MM
	Hours float64 `json:"hours"`
}

// MonthSummary holds the dashboard/history totals for one calendar month.
type MonthSummary struct {
	TotalOTHours float64      `json:"total_ot_hours"`
	TotalOTMoney float64      `json:"total_ot_money"`
	PresentDays  int          `json:"present_days"`
	DailySalary  float64      `json:"daily_salary"`
	SalaryEarned float64      `json:"salary_earned"`
	TotalSalary  float64      `json:"total_salary"`
	Chart        []ChartPoint `json:"chart"`
}

// SummarizeMonth reduces one month of overtime and attendance rows to the
// summary figures shown on the dashboard and history views. The daily base
// uses the real day count of (year, month) and is multiplied by the number
// of Present days; it is not summed per row.
func SummarizeMonth(u user.User, overtimes []overtime.Overtime, attendances []attendance.Attendance, year int, month time.Month) MonthSummary {
	var s MonthSummary

	byDay := make(map[string]float64)
	for _, ot := range overtimes {
		s.TotalOTHours += ot.Hours
		byDay[ot.Date.Format("02-01")] += ot.Hours
	}
	s.TotalOTMoney = s.TotalOTHours * u.OTRate

	for _, att := range attendances {
		if att.Status == attendance.StatusPresent {
			s.PresentDays++
		}
	}

	if days := DaysInMonth(year, month); days > 0 {
		s.DailySalary = u.MonthlySalary / float64(days)
	}
	s.SalaryEarned = s.DailySalary * float64(s.PresentDays)
	s.TotalSalary = s.SalaryEarned + s.TotalOTMoney

	labels := make([]string, 0, len(byDay))
	for label := range byDay {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		s.Chart = append(s.Chart, ChartPoint{Label: label, Hours: byDay[label]})
	}

	return s
}

// ExportRow is one date's figures in the detailed export report.
type ExportRow struct {
	Date          time.Time
	Status        attendance.Status
	InTime        *time.Time
	OutTime       *time.Time
	OTHours       float64
	OTAmount      float64
	DailyBase     float64
	TotalDailyPay float64
}

// ExportReport is the full detailed report: one row per date that has
// either an overtime or an attendance record, plus aggregate totals.
type ExportReport struct {
	Rows          []ExportRow
	TotalOTAmount float64
	TotalPay      float64
}

// BuildExportReport computes the export rows over every date the user has
// any record for. Dates with overtime but no attendance row are reported
// as Absent. The daily base always divides by the fixed 30-day divisor,
// regardless of the actual month length.
func BuildExportReport(u user.User, overtimes []overtime.Overtime, attendances []attendance.Attendance) ExportReport {
	otByDate := make(map[string]overtime.Overtime, len(overtimes))
	attByDate := make(map[string]attendance.Attendance, len(attendances))
	dateSet := make(map[string]time.Time)

	for _, ot := range overtimes {
		key := ot.Date.Format("2006-01-02")
		otByDate[key] = ot
		dateSet[key] = ot.Date
	}
	for _, att := range attendances {
		key := att.Date.Format("2006-01-02")
		attByDate[key] = att
		dateSet[key] = att.Date
	}

	keys := make([]string, 0, len(dateSet))
	for key := range dateSet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var report ExportReport
	for _, key := range keys {
		row := ExportRow{
			Date:   dateSet[key],
			Status: attendance.StatusAbsent,
		}
		if ot, ok := otByDate[key]; ok {
			row.OTHours = ot.Hours
		}
		if att, ok := attByDate[key]; ok {
			row.Status = att.Status
			row.InTime = att.InTime
			row.OutTime = att.OutTime
		}
		row.DailyBase, row.OTAmount, row.TotalDailyPay = DailyPay(
			u.MonthlySalary, u.OTRate, row.Status, row.OTHours, ExportDaysDivisor,
		)

		report.TotalOTAmount += row.OTAmount
		report.TotalPay += row.TotalDailyPay
		report.Rows = append(report.Rows, row)
	}

	return report
}
