package dashboard

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . DashboardRepository

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountPresentSince counts the user's Present records dated on or after since
	CountPresentSince(ctx context.Context, userID string, since time.Time) (int64, error)

	// CountApprovedLeaves counts the user's approved leave requests
	CountApprovedLeaves(ctx context.Context, userID string) (int64, error)

	// CountOpenTasks counts tasks assigned to the user that are Pending or In Progress
	CountOpenTasks(ctx context.Context, userID string) (int64, error)

	// CountCompanyStaff counts the company's users other than Admins
	CountCompanyStaff(ctx context.Context, companyID string) (int64, error)

	// RecentAttendance, RecentLeaves and RecentTasks return the user's latest
	// records of each kind as activity items
	RecentAttendance(ctx context.Context, userID string, limit int) ([]Activity, error)
	RecentLeaves(ctx context.Context, userID string, limit int) ([]Activity, error)
	RecentTasks(ctx context.Context, userID string, limit int) ([]Activity, error)
}
