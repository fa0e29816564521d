// Package scheduler drives recurring processing runs on a timer.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// Processor executes one processing run.
type Processor interface {
	ProcessDue(ctx context.Context, now time.Time) (*domain.ProcessingResult, error)
}

// Runner calls a Processor every interval, with the first run aligned to a
// wall-clock time. Runs never overlap.
type Runner struct {
	processor Processor
	logger    *slog.Logger
	interval  time.Duration
	timeout   time.Duration
	runHour   int
	runMinute int
	now       func() time.Time
	notifyCh  chan struct{}
	mu        sync.Mutex
}

// NewRunner builds a runner from the recurring section of the config.
func NewRunner(processor Processor, cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	hour, minute, err := config.ParseClock(cfg.RecurringRunAt)
	if err != nil {
		return nil, err
	}
	if cfg.RecurringInterval <= 0 {
		return nil, fmt.Errorf("recurring interval must be positive, got %s", cfg.RecurringInterval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		processor: processor,
		logger:    logger.With(slog.String("component", "recurring-runner")),
		interval:  cfg.RecurringInterval,
		timeout:   cfg.RecurringRunTimeout,
		runHour:   hour,
		runMinute: minute,
		now:       time.Now,
		notifyCh:  make(chan struct{}, 1),
	}, nil
}

// Notify requests an immediate run. Non-blocking if a run is already pending.
func (r *Runner) Notify() {
	select {
	case r.notifyCh <- struct{}{}:
	default:
	}
}

// NotifyOn requests a run for every value received on triggers until ctx is
// done. The worker feeds it SIGHUP.
func (r *Runner) NotifyOn(ctx context.Context, triggers <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-triggers:
			r.logger.Info("Run requested", slog.String("signal", sig.String()))
			r.Notify()
		}
	}
}

// FirstDelay is the wait from now until the next configured wall-clock time.
func (r *Runner) FirstDelay(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), r.runHour, r.runMinute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// Start blocks until ctx is done.
func (r *Runner) Start(ctx context.Context) {
	delay := r.FirstDelay(r.now())
	r.logger.Info("Recurring runner started",
		slog.Duration("first_run_in", delay),
		slog.Duration("interval", r.interval))

	first := time.NewTimer(delay)
	defer first.Stop()

	// The ticker is created once the aligned first run has happened.
	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Recurring runner stopped")
			return
		case <-first.C:
			r.run(ctx, "schedule")
			ticker = time.NewTicker(r.interval)
			tick = ticker.C
		case <-tick:
			r.run(ctx, "schedule")
		case <-r.notifyCh:
			r.run(ctx, "notify")
		}
	}
}

func (r *Runner) run(ctx context.Context, trigger string) {
	result, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.Error("Recurring run failed", slog.String("trigger", trigger), slog.String("error", err.Error()))
		return
	}
	r.logger.Info("Recurring run complete",
		slog.String("trigger", trigger),
		slog.Int("processed", result.Processed),
		slog.Int("failed", len(result.Errors)),
		slog.Bool("interrupted", result.Interrupted))
}

// RunOnce executes a single processing run bounded by the configured timeout.
func (r *Runner) RunOnce(ctx context.Context) (*domain.ProcessingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.processor.ProcessDue(ctx, r.now())
}
