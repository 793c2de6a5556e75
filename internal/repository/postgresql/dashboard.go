package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, query string, args ...any) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountPresentSince counts Present attendance on or after since
func (r *dashboardRepositoryImpl) CountPresentSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM attendances
		WHERE user_id = $1 AND date >= $2::date AND status = 'Present'`,
		userID, since.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("count present days: %w", err)
	}
	return n, nil
}

// CountApprovedLeaves counts approved leave requests
func (r *dashboardRepositoryImpl) CountApprovedLeaves(ctx context.Context, userID string) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leaves WHERE user_id = $1 AND status = 'Approved'`, userID)
	if err != nil {
		return 0, fmt.Errorf("count approved leaves: %w", err)
	}
	return n, nil
}

// CountOpenTasks counts Pending and In Progress tasks assigned to the user
func (r *dashboardRepositoryImpl) CountOpenTasks(ctx context.Context, userID string) (int64, error) {
	n, err := r.count(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE assigned_to = $1 AND status IN ('Pending', 'In Progress')`, userID)
	if err != nil {
		return 0, fmt.Errorf("count open tasks: %w", err)
	}
	return n, nil
}

// CountCompanyStaff counts company users excluding Admins
func (r *dashboardRepositoryImpl) CountCompanyStaff(ctx context.Context, companyID string) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users WHERE company_id = $1 AND role <> 'Admin'`, companyID)
	if err != nil {
		return 0, fmt.Errorf("count company staff: %w", err)
	}
	return n, nil
}

func (r *dashboardRepositoryImpl) activity(ctx context.Context, kind dashboard.ActivityKind, query string, args ...any) ([]dashboard.Activity, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent %s: %w", kind, err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (dashboard.Activity, error) {
		a := dashboard.Activity{Kind: kind}
		err := row.Scan(&a.Title, &a.Date, &a.Status, &a.Priority)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent %s: %w", kind, err)
	}
	return items, nil
}

// RecentAttendance returns the latest check-ins
func (r *dashboardRepositoryImpl) RecentAttendance(ctx context.Context, userID string, limit int) ([]dashboard.Activity, error) {
	return r.activity(ctx, dashboard.ActivityAttendance, `
		SELECT CASE WHEN check_out IS NULL THEN 'Checked In' ELSE 'Checked Out' END,
			check_in, status, ''
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC, check_in DESC
		LIMIT $2`, userID, limit)
}

// RecentLeaves returns the latest leave requests
func (r *dashboardRepositoryImpl) RecentLeaves(ctx context.Context, userID string, limit int) ([]dashboard.Activity, error) {
	return r.activity(ctx, dashboard.ActivityLeave, `
		SELECT 'Leave Request (' || type || ')', created_at, status, ''
		FROM leaves
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
}

// RecentTasks returns the latest tasks assigned to the user
func (r *dashboardRepositoryImpl) RecentTasks(ctx context.Context, userID string, limit int) ([]dashboard.Activity, error) {
	return r.activity(ctx, dashboard.ActivityTask, `
		SELECT title, created_at, status, priority
		FROM tasks
		WHERE assigned_to = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
}
