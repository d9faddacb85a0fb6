// Package scheduler wraps robfig/cron with named jobs, a shared timezone
// and a per-run timeout.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a scheduled task.
type Job func(ctx context.Context) error

// Scheduler manages periodic jobs.
type Scheduler struct {
	cron       *cron.Cron
	jobs       map[string]cron.EntryID
	jobTimeout time.Duration
	logger     *slog.Logger
}

// New creates a scheduler running in the given timezone.
func New(timezone string, logger *slog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		jobs:       make(map[string]cron.EntryID),
		jobTimeout: 30 * time.Minute,
		logger:     logger,
	}, nil
}

// AddJob registers a job under a cron schedule such as "0 7 * * *".
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()

		s.logger.Info("job starting", "job", name)
		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("job failed", "job", name, "error", err)
			return
		}
		s.logger.Info("job complete", "job", name, "elapsed", time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	s.logger.Info("job added", "job", name, "schedule", schedule)
	return nil
}

// AddDailyJob registers a job to run once a day at "HH:MM" local time.
func (s *Scheduler) AddDailyJob(name, timeStr string, job Job) error {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return fmt.Errorf("invalid time format %s: %w", timeStr, err)
	}
	return s.AddJob(name, fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), job)
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; the returned context is done once in-flight jobs
// finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
