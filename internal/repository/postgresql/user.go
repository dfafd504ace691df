package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
)

const userColumns = `id, username, email, password_hash, employee_id, designation, department,
	   monthly_salary, ot_rate, role, is_blocked, created_at, last_login, last_ip`

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.EmployeeID, &u.Designation, &u.Department,
		&u.MonthlySalary, &u.OTRate, &u.Role, &u.IsBlocked, &u.CreatedAt, &u.LastLogin, &u.LastIP,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u.ID = uuid.NewString()

	query := `
		INSERT INTO users (
			id, username, email, password_hash, employee_id, designation, department,
			monthly_salary, ot_rate, role, is_blocked
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.EmployeeID, u.Designation, u.Department,
		u.MonthlySalary, u.OTRate, u.Role, u.IsBlocked,
	).Scan(&u.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return user.User{}, user.ErrUsernameTaken
			case "users_email_key":
				return user.User{}, user.ErrEmailTaken
			case "users_employee_id_key":
				return user.User{}, user.ErrEmployeeIDTaken
			}
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) getBy(ctx context.Context, field string, value interface{}) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", userColumns, field)

	u, err := scanUser(q.QueryRow(ctx, query, value))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by %s: %w", field, err)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getBy(ctx, "username", username)
}

// GetByEmployeeID implements user.UserRepository.
func (r *userRepository) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	return r.getBy(ctx, "employee_id", employeeID)
}

// Count implements user.UserRepository.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at", userColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateProfile implements user.UserRepository.
func (r *userRepository) UpdateProfile(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1, email = $2, employee_id = $3, designation = $4,
			department = $5, monthly_salary = $6, ot_rate = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		u.Username, u.Email, u.EmployeeID, u.Designation, u.Department,
		u.MonthlySalary, u.OTRate, u.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// RecordLogin implements user.UserRepository.
func (r *userRepository) RecordLogin(ctx context.Context, id string, at time.Time, ip string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE users SET last_login = $1, last_ip = $2 WHERE id = $3", at, ip, id)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetBlocked implements user.UserRepository.
func (r *userRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE users SET is_blocked = $1 WHERE id = $2", blocked, id)
	if err != nil {
		return fmt.Errorf("failed to set blocked flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
