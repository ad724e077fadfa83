// Package scheduler triggers notification jobs on cron schedules inside the process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
)

// Scheduler runs jobs on cron expressions evaluated in one timezone.
// Overlapping runs of the same entry are skipped.
type Scheduler struct {
	c   *cron.Cron
	log zerolog.Logger
}

func New(loc *time.Location, lg zerolog.Logger) *Scheduler {
	cl := cronLogger{l: lg}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	return &Scheduler{c: c, log: lg}
}

// Add registers job on spec. Standard five-field expressions and descriptors such as
// "@hourly" are accepted.
func (s *Scheduler) Add(spec string, job ndomain.Job) error {
	_, err := s.c.AddFunc(spec, func() {
		ctx := s.log.WithContext(context.Background())
		res := job.Run(ctx)
		ev := s.log.Info()
		if !res.Success {
			ev = s.log.Error()
		}
		ev.Str("job", job.Name()).
			Bool("success", res.Success).
			Int("sent", res.Sent).
			Int("errors", res.Errors).
			Str("error", res.Error).
			Msg("scheduled run finished")
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", job.Name(), spec, err)
	}
	s.log.Info().Str("job", job.Name()).Str("schedule", spec).Msg("job scheduled")
	return nil
}

func (s *Scheduler) Start() { s.c.Start() }

// Stop prevents new runs and waits for running ones until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.c.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{ l zerolog.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
