package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement"
)

// AnnouncementJobs keeps the is_active flag in line with expires_at.
// Listing already hides expired rows; this makes the stored flag agree.
type AnnouncementJobs struct {
	announcementRepository announcement.AnnouncementRepository
	now                    func() time.Time
}

func NewAnnouncementJobs(announcementRepository announcement.AnnouncementRepository) *AnnouncementJobs {
	return &AnnouncementJobs{
		announcementRepository: announcementRepository,
		now:                    time.Now,
	}
}

func (j *AnnouncementJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("deactivate_expired_announcements", time.Hour, j.DeactivateExpired)
}

func (j *AnnouncementJobs) DeactivateExpired(ctx context.Context) error {
	n, err := j.announcementRepository.DeactivateExpired(ctx, j.now())
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Deactivated expired announcements", "count", n)
	}
	return nil
}
