package company

import "context"

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . CompanyRepository

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Delete(ctx context.Context, id string) error
}
