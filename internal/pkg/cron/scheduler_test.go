package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	announcementmock "github.com/dayflow-hr/hrms-backend-go/internal/domain/announcement/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_IgnoresJobsAfterStart(t *testing.T) {
	s := NewScheduler()
	s.Start(context.Background())
	defer s.Stop()

	s.AddJob("late", time.Hour, func(ctx context.Context) error { return nil })
	assert.Empty(t, s.jobs)
}

func TestScheduler_RunOnceKeepsGoingAfterFailure(t *testing.T) {
	s := NewScheduler()
	var second bool
	s.AddJob("fails", time.Hour, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("succeeds", time.Hour, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, second)
}

func TestAnnouncementJobs_DeactivateExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := announcementmock.NewMockAnnouncementRepository(ctrl)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	jobs := NewAnnouncementJobs(repo)
	jobs.now = func() time.Time { return now }

	repo.EXPECT().DeactivateExpired(gomock.Any(), now).Return(int64(2), nil)
	require.NoError(t, jobs.DeactivateExpired(context.Background()))

	repo.EXPECT().DeactivateExpired(gomock.Any(), now).Return(int64(0), errors.New("db down"))
	assert.Error(t, jobs.DeactivateExpired(context.Background()))
}

type sweepRecorder struct {
	idle []time.Duration
}

func (r *sweepRecorder) Sweep(idle time.Duration) int {
	r.idle = append(r.idle, idle)
	return 3
}

func TestLimiterJobs_SweepsWithConfiguredIdle(t *testing.T) {
	rec := &sweepRecorder{}
	s := NewScheduler()
	NewLimiterJobs(rec, 10*time.Minute, time.Hour).RegisterJobs(s)

	s.RunOnce(context.Background())
	assert.Equal(t, []time.Duration{time.Hour}, rec.idle)
}
