package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Create implements overtime.OvertimeRepository. The conditional insert
// leans on the (user_id, date) unique constraint so two concurrent adds
// for the same date cannot both land.
func (r *overtimeRepository) Create(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	ot.ID = uuid.NewString()

	query := `
		INSERT INTO overtimes (id, user_id, date, hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, ot.ID, ot.UserID, ot.Date, ot.Hours).Scan(&ot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrDuplicateDate
		}
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return ot, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, date, hours, created_at FROM overtimes WHERE id = $1`

	var ot overtime.Overtime
	err := q.QueryRow(ctx, query, id).Scan(&ot.ID, &ot.UserID, &ot.Date, &ot.Hours, &ot.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime by id: %w", err)
	}

	return ot, nil
}

func (r *overtimeRepository) list(ctx context.Context, query string, args ...interface{}) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtimes: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		var ot overtime.Overtime
		if err := rows.Scan(&ot.ID, &ot.UserID, &ot.Date, &ot.Hours, &ot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, ot)
	}

	return overtimes, rows.Err()
}

// ListByUserAndMonth implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByUserAndMonth(ctx context.Context, userID string, year int, month time.Month) ([]overtime.Overtime, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, date, hours, created_at
		FROM overtimes
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`
	return r.list(ctx, query, userID, start, end)
}

// ListByUser implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByUser(ctx context.Context, userID string) ([]overtime.Overtime, error) {
	query := `
		SELECT id, user_id, date, hours, created_at
		FROM overtimes
		WHERE user_id = $1
		ORDER BY date
	`
	return r.list(ctx, query, userID)
}

// Delete implements overtime.OvertimeRepository.
func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM overtimes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

// DeleteByUser implements overtime.OvertimeRepository.
func (r *overtimeRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM overtimes WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to delete user overtimes: %w", err)
	}
	return nil
}

// CountAll implements overtime.OvertimeRepository.
func (r *overtimeRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM overtimes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overtimes: %w", err)
	}
	return count, nil
}
