// Package sink produces the alarms decided by the scheduler: a sound on the local machine and, optionally, a
// message on Slack or a webhook call.
package sink

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResourceNotFound = errors.New("sound resource not found")
	ErrNoPlayer         = errors.New("no sound player available")
)

type Notifier interface {
	Notify(ctx context.Context, kind alarm.Kind) error
}

var _ Notifier = Sinks{}

// Sinks sends the alarm to every Notifier concurrently. A failing Notifier doesn't stop the others.
type Sinks []Notifier

func (s Sinks) Notify(ctx context.Context, kind alarm.Kind) error {
	var g errgroup.Group
	errs := make([]error, len(s))
	for i, n := range s {
		g.Go(func() error {
			if err := n.Notify(ctx, kind); err != nil {
				errs[i] = fmt.Errorf("sink %d: %w", i, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
