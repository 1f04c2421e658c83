// Package schedule runs a job on a cron expression inside the process, for
// hosts without an external scheduler.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/garrettladley/lyricboard/internal/xslog"
)

type Job func(ctx context.Context) error

type Scheduler struct {
	spec     string
	schedule cron.Schedule
	location *time.Location
	cron     *cron.Cron
	logger   *slog.Logger
}

type config struct {
	location *time.Location
}

type Option func(*config)

// WithLocation interprets specs without a CRON_TZ= prefix in loc.
func WithLocation(loc *time.Location) Option {
	return func(cfg *config) { cfg.location = loc }
}

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// New parses spec: five-field cron with an optional leading seconds field,
// optionally prefixed with CRON_TZ=. Runs are chained so a slow run is
// skipped rather than overlapped.
func New(spec string, logger *slog.Logger, opts ...Option) (*Scheduler, error) {
	cfg := &config{location: time.Local}
	for _, opt := range opts {
		opt(cfg)
	}

	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	cl := cronLogger{logger: logger}
	return &Scheduler{
		spec:     spec,
		schedule: schedule,
		location: cfg.location,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLocation(cfg.location),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}, nil
}

// Run blocks until ctx is done, invoking job on every tick. Job errors are
// logged and do not stop the schedule.
func (s *Scheduler) Run(ctx context.Context, job Job) error {
	s.cron.Schedule(s.schedule, cron.FuncJob(func() {
		if err := job(ctx); err != nil {
			s.logger.ErrorContext(ctx, "scheduled run failed", xslog.Error(err))
		}
	}))

	s.cron.Start()
	s.logger.InfoContext(ctx, "schedule started",
		xslog.Schedule(s.spec),
		xslog.Next(s.Next(time.Now())))

	<-ctx.Done()

	s.logger.InfoContext(ctx, "schedule stopping, waiting for running job")
	<-s.cron.Stop().Done()
	return nil
}

// Next reports when the schedule fires after t, read in the scheduler's
// location.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{xslog.Error(err)}, keysAndValues...)...)
}
