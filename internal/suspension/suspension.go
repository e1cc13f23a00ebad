// Package suspension tracks whether the user has temporarily paused all alarms.
//
// A suspension expires lazily: there is no timer. Every read compares the current time with the deadline and
// clears the suspension once the deadline has passed.
package suspension

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var ErrInvalidDuration = errors.New("pause duration must be positive")

// A Refresher is told whenever the suspension state changes, so the status can be updated immediately.
type Refresher interface {
	Refresh()
}

// Controller holds the suspension state. It is safe for concurrent use.
type Controller struct {
	Refresher Refresher
	Now       func() time.Time
	logger    *slog.Logger
	lock      sync.Mutex
	suspended bool
	resumeAt  time.Time
}

func New(logger *slog.Logger) *Controller {
	return &Controller{
		Now:    time.Now,
		logger: logger,
	}
}

// Pause suspends all alarms for the given number of minutes.
func (c *Controller) Pause(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, minutes)
	}
	c.lock.Lock()
	c.suspended = true
	c.resumeAt = c.Now().Add(time.Duration(minutes) * time.Minute)
	resumeAt := c.resumeAt
	c.lock.Unlock()

	c.logger.Info("alarms paused", "minutes", minutes, "until", resumeAt.Format(time.TimeOnly))
	c.refresh()
	return nil
}

// Resume cancels any suspension.
func (c *Controller) Resume() {
	c.lock.Lock()
	wasSuspended := c.suspended
	c.suspended = false
	c.resumeAt = time.Time{}
	c.lock.Unlock()

	if wasSuspended {
		c.logger.Info("alarms resumed")
	}
	c.refresh()
}

// IsSuspended reports whether alarms are currently suspended. If the suspension has expired, it is cleared.
func (c *Controller) IsSuspended() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.check()
}

// ResumeAt returns the time at which the current suspension ends. If alarms aren't suspended, it returns false.
func (c *Controller) ResumeAt() (time.Time, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.check() {
		return time.Time{}, false
	}
	return c.resumeAt, true
}

// check applies lazy expiry. Must be called with the lock held.
func (c *Controller) check() bool {
	if c.suspended && !c.Now().Before(c.resumeAt) {
		c.suspended = false
		c.resumeAt = time.Time{}
		c.logger.Debug("suspension expired")
	}
	return c.suspended
}

func (c *Controller) refresh() {
	if c.Refresher != nil {
		c.Refresher.Refresh()
	}
}
