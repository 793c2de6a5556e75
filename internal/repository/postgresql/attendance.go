package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attendanceSelect = `
	SELECT a.id, a.user_id, a.date, a.check_in, a.check_out, a.status,
		a.created_at, a.updated_at, u.company_id, u.name, u.email
	FROM attendances a
	JOIN users u ON u.id = a.user_id`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CompanyID,
		&a.UserName,
		&a.UserEmail,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, where string, arg any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, attendanceSelect+` WHERE `+where+` ORDER BY a.date DESC, a.check_in DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = q.QueryRow(ctx, query, id.String(), a.UserID, a.Date, a.CheckIn, a.Status).Scan(&a.ID)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "attendances_one_open_session" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	return r.GetByID(ctx, a.ID)
}

// HasOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasOpenSession(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE user_id = $1 AND check_out IS NULL)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check open session: %w", err)
	}
	return exists, nil
}

// CloseOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CloseOpenSession(ctx context.Context, userID string, at time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, updated_at = NOW()
		WHERE id = (
			SELECT id FROM attendances
			WHERE user_id = $1 AND check_out IS NULL
			ORDER BY created_at DESC
			LIMIT 1
		) AND check_out IS NULL
		RETURNING id`

	var id string
	if err := q.QueryRow(ctx, query, userID, at).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("close open session: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance %s: %w", id, err)
	}
	return a, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return r.list(ctx, `a.user_id = $1`, userID)
}

// ListByCompany implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]attendance.Attendance, error) {
	return r.list(ctx, `u.company_id = $1`, companyID)
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, status = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, a.ID, a.CheckIn, a.CheckOut, a.Status)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "attendances_one_open_session" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("update attendance %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	return r.GetByID(ctx, a.ID)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
