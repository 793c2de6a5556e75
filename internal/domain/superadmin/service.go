package superadmin

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . SuperAdminService

type SuperAdminService interface {
	ListCompanies(ctx context.Context) ([]CompanySummary, error)
	ListAdmins(ctx context.Context) ([]AdminResponse, error)
	GetCompanyDetails(ctx context.Context, companyID string) (*CompanyDetailsResponse, error)
	GetSystemStats(ctx context.Context) (*SystemStatsResponse, error)
	DeleteCompany(ctx context.Context, companyID string) (*DeleteCompanyResponse, error)
	UpdateUser(ctx context.Context, userID string, req UpdateAnyUserRequest) (AdminResponse, error)
}
