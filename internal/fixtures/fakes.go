// Package fixtures provides in-memory repository fakes shared by the
// service tests. The fakes honor the same invariants the SQL layer
// enforces, most importantly the one-row-per-(user, date) constraint.
package fixtures

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timepay/timepay-backend-go/internal/domain/admin"
	"github.com/timepay/timepay-backend-go/internal/domain/attendance"
	"github.com/timepay/timepay-backend-go/internal/domain/overtime"
	"github.com/timepay/timepay-backend-go/internal/domain/user"
)

// ==========================================
// TRANSACTIONS
// ==========================================

// FakeTx satisfies pgx.Tx for services that wrap repository calls in a
// transaction. The fakes do not interpret SQL; only the commit and
// rollback bookkeeping matters to tests.
type FakeTx struct {
	Committed  bool
	RolledBack bool
}

func (t *FakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *FakeTx) Commit(_ context.Context) error {
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(_ context.Context) error {
	t.RolledBack = true
	return nil
}

func (t *FakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *FakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

func (t *FakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *FakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *FakeTx) Exec(_ context.Context, _ string, _ ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *FakeTx) Query(_ context.Context, _ string, _ ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (t *FakeTx) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row { return nil }

func (t *FakeTx) Conn() *pgx.Conn { return nil }

// FakeTxBeginner hands out FakeTx instances and remembers the last one so
// tests can assert on commit or rollback.
type FakeTxBeginner struct {
	LastTx *FakeTx
}

func (f *FakeTxBeginner) BeginTx(_ context.Context) (pgx.Tx, error) {
	f.LastTx = &FakeTx{}
	return f.LastTx, nil
}

// ==========================================
// USERS
// ==========================================

type FakeUserRepository struct {
	Users  map[string]user.User
	nextID int
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make(map[string]user.User)}
}

func (f *FakeUserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.Users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
		if existing.EmployeeID != nil && u.EmployeeID != nil && *existing.EmployeeID == *u.EmployeeID {
			return user.User{}, user.ErrEmployeeIDTaken
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	f.Users[u.ID] = u
	return u, nil
}

func (f *FakeUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *FakeUserRepository) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *FakeUserRepository) GetByEmployeeID(_ context.Context, employeeID string) (user.User, error) {
	for _, u := range f.Users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *FakeUserRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.Users)), nil
}

func (f *FakeUserRepository) List(_ context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(f.Users))
	for _, u := range f.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (f *FakeUserRepository) UpdateProfile(_ context.Context, u user.User) error {
	existing, ok := f.Users[u.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	existing.Username = u.Username
	existing.Email = u.Email
	existing.EmployeeID = u.EmployeeID
	existing.Designation = u.Designation
	existing.Department = u.Department
	existing.MonthlySalary = u.MonthlySalary
	existing.OTRate = u.OTRate
	f.Users[u.ID] = existing
	return nil
}

func (f *FakeUserRepository) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	u, ok := f.Users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.Users[id] = u
	return nil
}

func (f *FakeUserRepository) RecordLogin(_ context.Context, id string, at time.Time, ip string) error {
	u, ok := f.Users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.LastLogin = &at
	u.LastIP = &ip
	f.Users[id] = u
	return nil
}

func (f *FakeUserRepository) SetBlocked(_ context.Context, id string, blocked bool) error {
	u, ok := f.Users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsBlocked = blocked
	f.Users[id] = u
	return nil
}

func (f *FakeUserRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.Users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.Users, id)
	return nil
}

// ==========================================
// OVERTIME
// ==========================================

type FakeOvertimeRepository struct {
	Records map[string]overtime.Overtime
	nextID  int
}

func NewFakeOvertimeRepository() *FakeOvertimeRepository {
	return &FakeOvertimeRepository{Records: make(map[string]overtime.Overtime)}
}

func (f *FakeOvertimeRepository) Create(_ context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	for _, existing := range f.Records {
		if existing.UserID == ot.UserID && existing.Date.Equal(ot.Date) {
			return overtime.Overtime{}, overtime.ErrDuplicateDate
		}
	}
	f.nextID++
	ot.ID = fmt.Sprintf("ot-%d", f.nextID)
	ot.CreatedAt = time.Now()
	f.Records[ot.ID] = ot
	return ot, nil
}

func (f *FakeOvertimeRepository) GetByID(_ context.Context, id string) (overtime.Overtime, error) {
	ot, ok := f.Records[id]
	if !ok {
		return overtime.Overtime{}, overtime.ErrOvertimeNotFound
	}
	return ot, nil
}

func (f *FakeOvertimeRepository) listSorted(filter func(overtime.Overtime) bool) []overtime.Overtime {
	var out []overtime.Overtime
	for _, ot := range f.Records {
		if filter(ot) {
			out = append(out, ot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (f *FakeOvertimeRepository) ListByUserAndMonth(_ context.Context, userID string, year int, month time.Month) ([]overtime.Overtime, error) {
	return f.listSorted(func(ot overtime.Overtime) bool {
		return ot.UserID == userID && ot.Date.Year() == year && ot.Date.Month() == month
	}), nil
}

func (f *FakeOvertimeRepository) ListByUser(_ context.Context, userID string) ([]overtime.Overtime, error) {
	return f.listSorted(func(ot overtime.Overtime) bool { return ot.UserID == userID }), nil
}

func (f *FakeOvertimeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.Records[id]; !ok {
		return overtime.ErrOvertimeNotFound
	}
	delete(f.Records, id)
	return nil
}

func (f *FakeOvertimeRepository) DeleteByUser(_ context.Context, userID string) error {
	for id, ot := range f.Records {
		if ot.UserID == userID {
			delete(f.Records, id)
		}
	}
	return nil
}

func (f *FakeOvertimeRepository) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.Records)), nil
}

// ==========================================
// ATTENDANCE
// ==========================================

type FakeAttendanceRepository struct {
	Records map[string]attendance.Attendance
	nextID  int
}

func NewFakeAttendanceRepository() *FakeAttendanceRepository {
	return &FakeAttendanceRepository{Records: make(map[string]attendance.Attendance)}
}

func (f *FakeAttendanceRepository) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.Records {
		if existing.UserID == att.UserID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrDuplicateDate
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = time.Now()
	f.Records[att.ID] = att
	return att, nil
}

func (f *FakeAttendanceRepository) CreateIfAbsent(ctx context.Context, att attendance.Attendance) (bool, error) {
	_, err := f.Create(ctx, att)
	if err != nil {
		if err == attendance.ErrDuplicateDate {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *FakeAttendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.Records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *FakeAttendanceRepository) listSorted(filter func(attendance.Attendance) bool, desc bool) []attendance.Attendance {
	var out []attendance.Attendance
	for _, att := range f.Records {
		if filter(att) {
			out = append(out, att)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (f *FakeAttendanceRepository) ListByUserAndMonth(_ context.Context, userID string, year int, month time.Month) ([]attendance.Attendance, error) {
	return f.listSorted(func(att attendance.Attendance) bool {
		return att.UserID == userID && att.Date.Year() == year && att.Date.Month() == month
	}, false), nil
}

func (f *FakeAttendanceRepository) ListByUser(_ context.Context, userID string) ([]attendance.Attendance, error) {
	return f.listSorted(func(att attendance.Attendance) bool { return att.UserID == userID }, true), nil
}

func (f *FakeAttendanceRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.Records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.Records, id)
	return nil
}

func (f *FakeAttendanceRepository) DeleteByUser(_ context.Context, userID string) error {
	for id, att := range f.Records {
		if att.UserID == userID {
			delete(f.Records, id)
		}
	}
	return nil
}

func (f *FakeAttendanceRepository) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.Records)), nil
}

// ==========================================
// ADMIN
// ==========================================

// FakeStatsRepository serves canned aggregates.
type FakeStatsRepository struct {
	TotalUsers     int64
	ActiveToday    int64
	CreatedInMonth int64
	Signups        map[string]int
	Summaries      []admin.UserSummaryRow
}

func (f *FakeStatsRepository) CountUsers(_ context.Context) (int64, error) { return f.TotalUsers, nil }

func (f *FakeStatsRepository) CountUsersActiveOn(_ context.Context, _ time.Time) (int64, error) {
	return f.ActiveToday, nil
}

func (f *FakeStatsRepository) CountUsersCreatedIn(_ context.Context, _ int, _ time.Month) (int64, error) {
	return f.CreatedInMonth, nil
}

func (f *FakeStatsRepository) SignupsSince(_ context.Context, _ time.Time) (map[string]int, error) {
	return f.Signups, nil
}

func (f *FakeStatsRepository) UserSummaries(_ context.Context) ([]admin.UserSummaryRow, error) {
	return f.Summaries, nil
}

type FakeAuditRepository struct {
	Logs []admin.AuditLog
}

func (f *FakeAuditRepository) Create(_ context.Context, log admin.AuditLog) error {
	f.Logs = append(f.Logs, log)
	return nil
}
