package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) admin.StatsRepository {
	return &statsRepository{db: db}
}

// CountUsers implements admin.StatsRepository.
func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountUsersActiveOn implements admin.StatsRepository.
func (r *statsRepository) CountUsersActiveOn(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	query := `SELECT COUNT(*) FROM users WHERE last_login >= $1 AND last_login < $2`

	var count int64
	if err := q.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

// CountUsersCreatedIn implements admin.StatsRepository.
func (r *statsRepository) CountUsersCreatedIn(ctx context.Context, year int, month time.Month) (int64, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `SELECT COUNT(*) FROM users WHERE created_at >= $1 AND created_at < $2`

	var count int64
	if err := q.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}

// SignupsSince implements admin.StatsRepository.
func (r *statsRepository) SignupsSince(ctx context.Context, since time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT created_at::date AS day, COUNT(*)
		FROM users
		WHERE created_at >= $1
		GROUP BY day
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query signups: %w", err)
	}
	defer rows.Close()

	signups := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan signup row: %w", err)
		}
		signups[day.Format("2006-01-02")] = count
	}

	return signups, rows.Err()
}

// UserSummaries implements admin.StatsRepository.
func (r *statsRepository) UserSummaries(ctx context.Context) ([]admin.UserSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.username, u.email, u.role, u.is_blocked, u.created_at,
			   COALESCE(ot.total_hours, 0) AS total_ot_hours,
			   COALESCE(att.present_days, 0) AS present_days
		FROM users u
		LEFT JOIN (
			SELECT user_id, SUM(hours) AS total_hours FROM overtimes GROUP BY user_id
		) ot ON ot.user_id = u.id
		LEFT JOIN (
			SELECT user_id, COUNT(*) AS present_days FROM attendances WHERE status = 'Present' GROUP BY user_id
		) att ON att.user_id = u.id
		ORDER BY u.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user summaries: %w", err)
	}
	defer rows.Close()

	var summaries []admin.UserSummaryRow
	for rows.Next() {
		var row admin.UserSummaryRow
		if err := rows.Scan(&row.Username, &row.Email, &row.Role, &row.IsBlocked, &row.CreatedAt,
			&row.TotalOTHours, &row.PresentDays); err != nil {
			return nil, fmt.Errorf("failed to scan user summary: %w", err)
		}
		summaries = append(summaries, row)
	}

	return summaries, rows.Err()
}

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) admin.AuditRepository {
	return &auditRepository{db: db}
}

// Create implements admin.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, log admin.AuditLog) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO audit_logs (id, admin_id, target_user_id, action) VALUES ($1, $2, $3, $4)`

	if _, err := q.Exec(ctx, query, uuid.NewString(), log.AdminID, log.TargetUserID, log.Action); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
