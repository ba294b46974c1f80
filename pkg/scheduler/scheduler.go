package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is the unit of work the scheduler runs on each tick.
type Job func(context.Context) error

// Expressions accept the standard five fields, an optional leading seconds
// field, and descriptors such as "@daily" or "@every 1h".
var parser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

// Scheduler runs a single job on a cron expression. Zero value is not usable;
// construct with New.
type Scheduler struct {
	cron       *cron.Cron
	expression string
	job        Job
	logger     *slog.Logger
	jobTimeout time.Duration

	mu      sync.Mutex
	started bool
}

type Option func(*Scheduler)

// WithLogger replaces slog.Default for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJobTimeout caps each execution; the job's context carries the deadline.
func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

func New(expression string, job Job, opts ...Option) (*Scheduler, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := parser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression [%s]: %w", expression, err)
	}

	abstract := &Scheduler{
		cron:       cron.New(cron.WithParser(parser)),
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(abstract)
	}

	return abstract, nil
}

// Start registers the job with the cron runner and begins ticking. The
// scheduler stops itself when the given context is cancelled. Starting twice
// is an error.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	_, err := s.cron.AddFunc(s.expression, func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed", "expression", s.expression, "error", err)
		}
	})

	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	s.cron.Start()
	s.started = true

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts ticking and blocks until any in-flight run returns.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()

	if !s.started {
		s.mu.Unlock()

		return
	}

	done := s.cron.Stop()
	s.started = false
	s.mu.Unlock()

	<-done.Done()
}

// Run executes the job once, immediately, applying the configured timeout.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	return s.job(ctx)
}
