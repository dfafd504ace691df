package payroll

import (
	"context"
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
)

// MonthReportResponse is the dashboard and history payload for one
// calendar month.
type MonthReportResponse struct {
	Year        int                             `json:"year"`
	Month       int                             `json:"month"`
	Summary     MonthSummary                    `json:"summary"`
	Overtimes   []overtime.OvertimeResponse     `json:"overtimes"`
	Attendances []attendance.AttendanceResponse `json:"attendances"`
}

// PayrollService computes the per-month pay views.
type PayrollService interface {
	// MonthReport loads the user's records for one calendar month and
	// reduces them to the dashboard summary figures
	MonthReport(ctx context.Context, userID string, year int, month time.Month) (MonthReportResponse, error)
}
