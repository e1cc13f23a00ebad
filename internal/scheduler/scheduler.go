// Package scheduler decides, once per polling interval, whether an alarm is due and sounds it.
//
// Any number of ticks may land in minute 29 or 59: the Ledger ensures each alarm fires at most once per hour.
package scheduler

import (
	"context"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"log/slog"
	"time"
)

// Preferences provides the user's active window and sound setting. They are read on every tick.
type Preferences interface {
	ActiveWindow() alarm.Window
	SoundEnabled() bool
}

// Suspender reports whether the user paused all alarms.
type Suspender interface {
	IsSuspended() bool
}

// Sink produces the actual alarm.
type Sink interface {
	Notify(ctx context.Context, kind alarm.Kind) error
}

// Scheduler fires the halfpast and bell alarms during the active window.
type Scheduler struct {
	Preferences Preferences
	Suspension  Suspender
	Sink        Sink
	Metrics     *Metrics
	Now         func() time.Time
	interval    time.Duration
	logger      *slog.Logger
	ledger      Ledger
}

func New(prefs Preferences, suspension Suspender, sink Sink, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		Preferences: prefs,
		Suspension:  suspension,
		Sink:        sink,
		Now:         time.Now,
		interval:    interval,
		logger:      logger,
		ledger:      make(Ledger),
	}
}

// Run evaluates the alarms immediately and then every interval, until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Debug("started", "interval", s.interval)
	defer s.logger.Debug("stopped")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx, s.Now())

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// tick performs one evaluation. It returns the kind that was due, if any, and the result of the fire gate.
func (s *Scheduler) tick(ctx context.Context, now time.Time) (alarm.Kind, Result, bool) {
	window := s.Preferences.ActiveWindow()
	if !window.Contains(now.Hour()) {
		return "", "", false
	}
	kind, ok := alarm.KindAt(now.Minute())
	if !ok || s.ledger.Fired(kind, now) {
		return "", "", false
	}
	s.ledger.Record(kind, now)

	result := s.fire(ctx, kind)
	s.Metrics.record(kind, result)
	return kind, result, true
}

// fire is the last check before the Sink is called. State may have changed since the tick was evaluated,
// so suspension, window and sound setting are read again.
func (s *Scheduler) fire(ctx context.Context, kind alarm.Kind) Result {
	l := s.logger.With("kind", kind)

	if s.Suspension.IsSuspended() {
		l.Info("alarm suppressed", "reason", "suspended")
		return Suppressed
	}
	if window := s.Preferences.ActiveWindow(); !window.Contains(s.Now().Hour()) {
		l.Info("alarm suppressed", "reason", "outside active window", "window", window.String())
		return Suppressed
	}
	if !s.Preferences.SoundEnabled() {
		l.Info("alarm suppressed", "reason", "sound disabled")
		return Suppressed
	}

	if err := s.notify(ctx, kind); err != nil {
		l.Warn("failed to sound alarm", "err", err)
		return Failed
	}
	l.Info("alarm sounded")
	return Fired
}

func (s *Scheduler) notify(ctx context.Context, kind alarm.Kind) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return s.Sink.Notify(ctx, kind)
}
