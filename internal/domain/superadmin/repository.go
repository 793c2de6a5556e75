package superadmin

import (
	"context"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . SuperAdminRepository

// SuperAdminRepository answers the cross-tenant questions of the platform
// console. Nothing here is scoped to a company unless a companyID is given.
type SuperAdminRepository interface {
	ListCompanySummaries(ctx context.Context) ([]CompanySummary, error)
	ListManagers(ctx context.Context) ([]user.User, error)

	CountAttendanceByCompany(ctx context.Context, companyID string) (int64, error)
	CountLeavesByStatus(ctx context.Context, companyID string) (map[string]int64, error)
	CountTasksByStatus(ctx context.Context, companyID string) (map[string]int64, error)
	CountActiveAnnouncements(ctx context.Context, companyID string) (int64, error)

	GetOverview(ctx context.Context) (Overview, error)
	ListRecentUsers(ctx context.Context, limit int) ([]user.User, error)

	// DeleteCompany removes the company with everything it owns and returns
	// the number of users deleted.
	DeleteCompany(ctx context.Context, companyID string) (int64, error)
}
