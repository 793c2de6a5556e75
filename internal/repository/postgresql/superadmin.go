package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/superadmin"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type superAdminRepositoryImpl struct {
	db *database.DB
}

func NewSuperAdminRepository(db *database.DB) superadmin.SuperAdminRepository {
	return &superAdminRepositoryImpl{db: db}
}

// ListCompanySummaries implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) ListCompanySummaries(ctx context.Context) ([]superadmin.CompanySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name,
			COUNT(u.id) FILTER (WHERE u.role = 'Admin'),
			COUNT(u.id) FILTER (WHERE u.role = 'HR'),
			COUNT(u.id) FILTER (WHERE u.role = 'Employee'),
			COUNT(u.id)
		FROM companies c
		LEFT JOIN users u ON u.company_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list company summaries: %w", err)
	}

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (superadmin.CompanySummary, error) {
		var s superadmin.CompanySummary
		err := row.Scan(&s.ID, &s.Name, &s.AdminCount, &s.HRCount, &s.EmployeeCount, &s.TotalUsers)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan company summary: %w", err)
	}
	return summaries, nil
}

// ListManagers implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) ListManagers(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` `+userFrom+`
		WHERE u.role IN ('Admin', 'HR')
		ORDER BY c.name, u.role`)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return collectUsers(rows)
}

func (r *superAdminRepositoryImpl) count(ctx context.Context, query string, args ...any) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *superAdminRepositoryImpl) countByStatus(ctx context.Context, query, companyID string) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[superadmin.StatusKey(status)] = n
	}
	return counts, rows.Err()
}

// CountAttendanceByCompany implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) CountAttendanceByCompany(ctx context.Context, companyID string) (int64, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE u.company_id = $1`, companyID)
	if err != nil {
		return 0, fmt.Errorf("count attendance of company %s: %w", companyID, err)
	}
	return n, nil
}

// CountLeavesByStatus implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) CountLeavesByStatus(ctx context.Context, companyID string) (map[string]int64, error) {
	counts, err := r.countByStatus(ctx, `
		SELECT l.status, COUNT(*) FROM leaves l
		JOIN users u ON u.id = l.user_id
		WHERE u.company_id = $1
		GROUP BY l.status`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count leaves of company %s: %w", companyID, err)
	}
	return counts, nil
}

// CountTasksByStatus implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) CountTasksByStatus(ctx context.Context, companyID string) (map[string]int64, error) {
	counts, err := r.countByStatus(ctx, `
		SELECT status, COUNT(*) FROM tasks
		WHERE company_id = $1
		GROUP BY status`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count tasks of company %s: %w", companyID, err)
	}
	return counts, nil
}

// CountActiveAnnouncements implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) CountActiveAnnouncements(ctx context.Context, companyID string) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM announcements WHERE company_id = $1 AND is_active`, companyID)
	if err != nil {
		return 0, fmt.Errorf("count announcements of company %s: %w", companyID, err)
	}
	return n, nil
}

// GetOverview implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) GetOverview(ctx context.Context) (superadmin.Overview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM users WHERE role <> 'SuperAdmin'),
			(SELECT COUNT(*) FROM users WHERE role = 'Admin'),
			(SELECT COUNT(*) FROM users WHERE role = 'Employee'),
			(SELECT COUNT(*) FROM attendances),
			(SELECT COUNT(*) FROM leaves),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM announcements WHERE is_active)`

	var o superadmin.Overview
	err := q.QueryRow(ctx, query).Scan(
		&o.TotalCompanies,
		&o.TotalUsers,
		&o.TotalAdmins,
		&o.TotalEmployees,
		&o.TotalAttendance,
		&o.TotalLeaves,
		&o.TotalTasks,
		&o.TotalAnnouncements,
	)
	if err != nil {
		return superadmin.Overview{}, fmt.Errorf("system overview: %w", err)
	}
	return o, nil
}

// ListRecentUsers implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) ListRecentUsers(ctx context.Context, limit int) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` `+userFrom+`
		WHERE u.role <> 'SuperAdmin'
		ORDER BY u.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	return collectUsers(rows)
}

// DeleteCompany implements superadmin.SuperAdminRepository.
func (r *superAdminRepositoryImpl) DeleteCompany(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var deletedUsers int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE company_id = $1`, companyID).Scan(&deletedUsers); err != nil {
		return 0, fmt.Errorf("count users of company %s: %w", companyID, err)
	}

	// Everything the company owns goes with it through ON DELETE CASCADE.
	if _, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, companyID); err != nil {
		return 0, fmt.Errorf("delete company %s: %w", companyID, err)
	}
	return deletedUsers, nil
}
