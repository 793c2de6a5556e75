package attendance

import (
	"context"
)

//go:generate mockgen -destination=mock/service_mock.go -package=mock . AttendanceService

type AttendanceService interface {
	CheckIn(ctx context.Context) (AttendanceResponse, error)
	CheckOut(ctx context.Context) (AttendanceResponse, error)
	ListMine(ctx context.Context) ([]AttendanceResponse, error)
	ListCompany(ctx context.Context) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
