package attendance

import (
	"context"
	"time"

	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{AttendanceRepository: attendanceRepository}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseClock(field, value string) (*time.Time, validator.ValidationErrors) {
	if validator.IsEmpty(value) {
		return nil, nil
	}
	t, ok := validator.IsValidClockTime(value)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: field, Message: "must be a valid time in HH:MM format"},
		}
	}
	return &t, nil
}

// Add implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Add(ctx context.Context, userID string, req attendance.AddAttendanceRequest) (attendance.AttendanceResponse, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"},
		}
	}

	if date.After(today()) {
		return attendance.AttendanceResponse{}, attendance.ErrFutureDate
	}

	status := attendance.Status(req.Status)
	if !attendance.ValidStatus(status) {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidStatus
	}

	inTime, errs := parseClock("in_time", req.InTime)
	if errs != nil {
		return attendance.AttendanceResponse{}, errs
	}
	outTime, errs := parseClock("out_time", req.OutTime)
	if errs != nil {
		return attendance.AttendanceResponse{}, errs
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:  userID,
		Date:    date,
		Status:  status,
		InTime:  inTime,
		OutTime: outTime,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	atts, err := s.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(atts), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, userID, attendanceID string) error {
	att, err := s.AttendanceRepository.GetByID(ctx, attendanceID)
	if err != nil {
		return err
	}
	if att.UserID != userID {
		return attendance.ErrNotOwner
	}
	return s.AttendanceRepository.Delete(ctx, attendanceID)
}
