package announcement

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/repository_mock.go -package=mock . AnnouncementRepository

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	// ListVisible returns active, unexpired announcements newest first.
	ListVisible(ctx context.Context, companyID string, now time.Time) ([]Announcement, error)
	Update(ctx context.Context, a Announcement) (Announcement, error)
	Delete(ctx context.Context, id string) error
	// DeactivateExpired switches off active announcements whose expiry is
	// before now and returns how many changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
