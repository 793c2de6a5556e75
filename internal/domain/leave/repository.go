package leave

import "context"

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . LeaveRepository

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	ListByCompany(ctx context.Context, companyID string) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Leave, error)
	Delete(ctx context.Context, id string) error
}
