package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leaveSelect = `
	SELECT l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason, l.status,
		l.created_at, l.updated_at, u.company_id, u.name, u.email
	FROM leaves l
	JOIN users u ON u.id = l.user_id`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Type,
		&l.StartDate,
		&l.EndDate,
		&l.Reason,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.CompanyID,
		&l.UserName,
		&l.UserEmail,
	)
	return l, err
}

func (r *leaveRepositoryImpl) list(ctx context.Context, where string, arg any) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveSelect+` WHERE `+where+` ORDER BY l.created_at DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.Leave{}, fmt.Errorf("generate leave id: %w", err)
	}

	query := `
		INSERT INTO leaves (id, user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err = q.QueryRow(ctx, query, id.String(), l.UserID, l.Type, l.StartDate, l.EndDate, l.Reason, l.Status).Scan(&l.ID)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("create leave: %w", err)
	}

	return r.GetByID(ctx, l.ID)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("get leave %s: %w", id, err)
	}
	return l, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	return r.list(ctx, `l.user_id = $1`, userID)
}

// ListByCompany implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]leave.Leave, error) {
	return r.list(ctx, `u.company_id = $1`, companyID)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE leaves SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("update leave %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete leave %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}
