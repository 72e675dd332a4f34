package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one unit of work run by the PollScheduler.
type Job func(ctx context.Context) error

// PollScheduler runs a job, waits for the next activation of its schedule,
// and repeats. Unlike cron.Cron it never runs two jobs at once and the wait
// starts only after the previous run has finished.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewSchedule returns cron.Every(interval), or the parsed standard cron
// spec when one is given.
func NewSchedule(interval time.Duration, spec string) (cron.Schedule, error) {
	if spec == "" {
		return cron.Every(interval), nil
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll cron spec %q: %w", spec, err)
	}
	return schedule, nil
}

func NewPollScheduler(schedule cron.Schedule, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Run executes job immediately and then on every schedule activation until
// ctx is cancelled. It returns ctx.Err().
func (s *PollScheduler) Run(ctx context.Context, job Job) error {
	s.logger.Info("Starting poll scheduler...")
	for {
		if err := job(ctx); err != nil {
			s.logger.WithError(err).Debug("Poll job finished with error")
		}

		now := s.now()
		next := s.schedule.Next(now)
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for next poll")

		if err := s.sleep(ctx, next.Sub(now)); err != nil {
			s.logger.Info("Poll scheduler stopped.")
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
