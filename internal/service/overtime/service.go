package overtime

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
	"github.com/timepay/timepay-backend-go/internal/pkg/validator"
	"github.com/timepay/timepay-backend-go/internal/repository/postgresql"
)

type OvertimeServiceImpl struct {
	db database.TxBeginner
	overtime.OvertimeRepository
	attendance.AttendanceRepository
}

func NewOvertimeService(db database.TxBeginner, overtimeRepository overtime.OvertimeRepository, attendanceRepository attendance.AttendanceRepository) *OvertimeServiceImpl {
	return &OvertimeServiceImpl{
		db:                   db,
		OvertimeRepository:   overtimeRepository,
		AttendanceRepository: attendanceRepository,
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Add implements overtime.OvertimeService. The overtime insert and the
// Present auto-mark commit or roll back together.
func (s *OvertimeServiceImpl) Add(ctx context.Context, userID string, req overtime.AddOvertimeRequest) (overtime.OvertimeResponse, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return overtime.OvertimeResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"},
		}
	}

	if date.After(today()) {
		return overtime.OvertimeResponse{}, overtime.ErrFutureDate
	}
	if req.Hours < 0 {
		return overtime.OvertimeResponse{}, overtime.ErrNegativeHours
	}

	var created overtime.Overtime
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.OvertimeRepository.Create(txCtx, overtime.Overtime{
			UserID: userID,
			Date:   date,
			Hours:  req.Hours,
		})
		if err != nil {
			return err
		}

		// Working overtime implies having been at work that day
		_, err = s.AttendanceRepository.CreateIfAbsent(txCtx, attendance.Attendance{
			UserID: userID,
			Date:   date,
			Status: attendance.StatusPresent,
		})
		return err
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.NewOvertimeResponse(created), nil
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, userID string) ([]overtime.OvertimeResponse, error) {
	ots, err := s.OvertimeRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return overtime.NewOvertimeResponses(ots), nil
}

// Delete implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Delete(ctx context.Context, userID, overtimeID string) error {
	ot, err := s.OvertimeRepository.GetByID(ctx, overtimeID)
	if err != nil {
		return err
	}
	if ot.UserID != userID {
		return overtime.ErrNotOwner
	}
	return s.OvertimeRepository.Delete(ctx, overtimeID)
}
