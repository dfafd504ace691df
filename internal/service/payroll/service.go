package payroll

import (
	"context"
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/payroll"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	user.UserRepository
	overtime.OvertimeRepository
	attendance.AttendanceRepository
}

func NewPayrollService(userRepository user.UserRepository, overtimeRepository overtime.OvertimeRepository, attendanceRepository attendance.AttendanceRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		UserRepository:       userRepository,
		OvertimeRepository:   overtimeRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// MonthReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthReport(ctx context.Context, userID string, year int, month time.Month) (payroll.MonthReportResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return payroll.MonthReportResponse{}, err
	}

	overtimes, err := s.OvertimeRepository.ListByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		return payroll.MonthReportResponse{}, err
	}
	attendances, err := s.AttendanceRepository.ListByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		return payroll.MonthReportResponse{}, err
	}

	return payroll.MonthReportResponse{
		Year:        year,
		Month:       int(month),
		Summary:     payroll.SummarizeMonth(u, overtimes, attendances, year, month),
		Overtimes:   overtime.NewOvertimeResponses(overtimes),
		Attendances: attendance.NewAttendanceResponses(attendances),
	}, nil
}
