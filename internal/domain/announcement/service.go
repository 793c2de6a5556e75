package announcement

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . AnnouncementService

type AnnouncementService interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	List(ctx context.Context) ([]AnnouncementResponse, error)
	Update(ctx context.Context, id string, req UpdateAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
