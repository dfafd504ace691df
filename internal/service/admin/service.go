package admin

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
	"github.com/timepay/timepay-backend-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

// signupChartDays is the window of the dense signup histogram.
const signupChartDays = 30

type AdminServiceImpl struct {
	db database.TxBeginner
	user.UserRepository
	overtime.OvertimeRepository
	attendance.AttendanceRepository
	admin.StatsRepository
}

func NewAdminService(db database.TxBeginner, userRepository user.UserRepository, overtimeRepository overtime.OvertimeRepository, attendanceRepository attendance.AttendanceRepository, statsRepository admin.StatsRepository) *AdminServiceImpl {
	return &AdminServiceImpl{
		db:                   db,
		UserRepository:       userRepository,
		OvertimeRepository:   overtimeRepository,
		AttendanceRepository: attendanceRepository,
		StatsRepository:      statsRepository,
	}
}

// Dashboard implements admin.AdminService. The independent aggregates fan
// out concurrently; any failure cancels the rest.
func (s *AdminServiceImpl) Dashboard(ctx context.Context) (admin.DashboardResponse, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(signupChartDays - 1))

	var (
		stats        admin.DashboardStats
		users        []user.User
		otCount      int64
		attCount     int64
		signupsByDay map[string]int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalUsers, err = s.StatsRepository.CountUsers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ActiveUsersToday, err = s.StatsRepository.CountUsersActiveOn(gCtx, today)
		return err
	})
	g.Go(func() error {
		var err error
		stats.NewUsersMonth, err = s.StatsRepository.CountUsersCreatedIn(gCtx, now.Year(), now.Month())
		return err
	})
	g.Go(func() error {
		var err error
		otCount, err = s.OvertimeRepository.CountAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		attCount, err = s.AttendanceRepository.CountAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		signupsByDay, err = s.StatsRepository.SignupsSince(gCtx, since)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.UserRepository.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return admin.DashboardResponse{}, err
	}

	stats.TotalRecords = otCount + attCount

	// Every day of the window appears, zero-filled
	stats.SignupChart = make([]admin.SignupPoint, 0, signupChartDays)
	for day := since; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		stats.SignupChart = append(stats.SignupChart, admin.SignupPoint{
			Date:    key,
			Signups: signupsByDay[key],
		})
	}

	items := make([]admin.UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, admin.UserItem{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			IsBlocked: u.IsBlocked,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
			LastIP:    u.LastIP,
		})
	}

	return admin.DashboardResponse{Stats: stats, Users: items}, nil
}

// DeleteUser implements admin.AdminService. The account and its overtime
// and attendance rows go in one transaction; a failure leaves everything
// in place.
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, targetUserID string) error {
	target, err := s.UserRepository.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target.IsSuperAdmin() {
		return user.ErrSuperAdminProtected
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.OvertimeRepository.DeleteByUser(txCtx, targetUserID); err != nil {
			return err
		}
		if err := s.AttendanceRepository.DeleteByUser(txCtx, targetUserID); err != nil {
			return err
		}
		return s.UserRepository.Delete(txCtx, targetUserID)
	})
}

// ToggleUserBlocked implements admin.AdminService.
func (s *AdminServiceImpl) ToggleUserBlocked(ctx context.Context, targetUserID string) (bool, error) {
	target, err := s.UserRepository.GetByID(ctx, targetUserID)
	if err != nil {
		return false, err
	}
	if target.IsSuperAdmin() {
		return false, user.ErrSuperAdminProtected
	}

	blocked := !target.IsBlocked
	if err := s.UserRepository.SetBlocked(ctx, targetUserID, blocked); err != nil {
		return false, err
	}
	return blocked, nil
}
