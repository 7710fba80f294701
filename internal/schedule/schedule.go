// Package schedule runs refresh cycles on recurring UTC-aligned timers.
package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Task is one recurring refresh job.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// NextFunc computes the next firing instant strictly after now.
type NextFunc func(now time.Time) time.Time

// DailyAtHour fires at hour:00 UTC every day.
func DailyAtHour(hour int) NextFunc {
	return func(now time.Time) time.Time {
		now = now.UTC()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		return next
	}
}

// Hourly fires at the top of every hour.
func Hourly(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour).Add(time.Hour)
}

// Scheduler runs tasks on their recurrence. Each task carries an
// in-progress guard: a firing that finds the previous cycle still running
// is skipped rather than stacked, so cycles of one category never overlap.
type Scheduler struct {
	clock  clockwork.Clock
	logger *slog.Logger
	wg     sync.WaitGroup
}

// New creates a Scheduler on the given clock.
func New(clk clockwork.Clock, logger *slog.Logger) *Scheduler {
	return &Scheduler{clock: clk, logger: logger}
}

// Start launches a task loop. With immediate set, the task runs once right
// away before settling into its recurrence. The loop exits when ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context, task Task, next NextFunc, immediate bool) {
	guard := &sync.Mutex{}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if immediate {
			s.runGuarded(ctx, task, guard)
		}
		for {
			fireAt := next(s.clock.Now())
			select {
			case <-ctx.Done():
				return
			case <-s.clock.After(fireAt.Sub(s.clock.Now())):
			}
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.runGuarded(ctx, task, guard)
			}()
		}
	}()
}

// Wait blocks until every task loop and in-flight run has finished. Call
// after cancelling the context passed to Start.
func (s *Scheduler) Wait() { s.wg.Wait() }

func (s *Scheduler) runGuarded(ctx context.Context, task Task, guard *sync.Mutex) {
	if !guard.TryLock() {
		s.logger.Warn("previous cycle still running, skipping", "task", task.Name)
		return
	}
	defer guard.Unlock()

	if err := task.Run(ctx); err != nil {
		s.logger.Error("refresh cycle failed", "task", task.Name, "error", err)
	}
}
