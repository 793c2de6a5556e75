package leave

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . LeaveService

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context) ([]LeaveResponse, error)
	ListCompany(ctx context.Context) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
