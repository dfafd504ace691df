package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. Same conditional
// insert shape as the overtime repository; the unique constraint is the
// source of truth for the one-row-per-day invariant.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (id, user_id, date, status, in_time, out_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, att.ID, att.UserID, att.Date, att.Status, att.InTime, att.OutTime).
		Scan(&att.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrDuplicateDate
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository.
func (r *attendanceRepository) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	_, err := r.Create(ctx, att)
	if err != nil {
		if err == attendance.ErrDuplicateDate {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, date, status, in_time, out_time, created_at FROM attendances WHERE id = $1`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status, &att.InTime, &att.OutTime, &att.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.UserID, &att.Date, &att.Status, &att.InTime, &att.OutTime, &att.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// ListByUserAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Attendance, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, date, status, in_time, out_time, created_at
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`
	return r.list(ctx, query, userID, start, end)
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	query := `
		SELECT id, user_id, date, status, in_time, out_time, created_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
	`
	return r.list(ctx, query, userID)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM attendances WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// DeleteByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM attendances WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to delete user attendances: %w", err)
	}
	return nil
}

// CountAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendances").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}
	return count, nil
}
