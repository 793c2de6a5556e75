package cron

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper drops per-client state unused for longer than idle.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// LimiterJobs evicts idle login rate limiter buckets.
type LimiterJobs struct {
	limiter  Sweeper
	interval time.Duration
	idle     time.Duration
}

func NewLimiterJobs(limiter Sweeper, interval, idle time.Duration) *LimiterJobs {
	return &LimiterJobs{limiter: limiter, interval: interval, idle: idle}
}

func (j *LimiterJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_login_rate_limiters", j.interval, j.Sweep)
}

func (j *LimiterJobs) Sweep(_ context.Context) error {
	if n := j.limiter.Sweep(j.idle); n > 0 {
		slog.Debug("Evicted idle rate limiters", "count", n)
	}
	return nil
}
