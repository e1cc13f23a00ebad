// Package status determines what the user should see: whether alarms are active, inactive or suspended.
//
// The Presenter recomputes the mode periodically and on request, shows it on an Indicator and publishes it to
// any subscriber. It never affects whether alarms fire.
package status

import (
	"context"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/pkg/pubsub"
	"io"
	"log/slog"
	"sync"
	"time"
)

type Mode int

const (
	Inactive Mode = iota
	Active
	Suspended
)

var Modes = []Mode{Active, Inactive, Suspended}

var modeNames = map[Mode]string{
	Inactive:  "inactive",
	Active:    "active",
	Suspended: "suspended",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type Preferences interface {
	ActiveWindow() alarm.Window
}

type Suspender interface {
	IsSuspended() bool
}

// An Indicator shows the current mode to the user.
type Indicator interface {
	Show(mode Mode)
}

// Presenter computes the current Mode and pushes changes to its Indicator and subscribers.
type Presenter struct {
	Preferences Preferences
	Suspension  Suspender
	Indicator   Indicator
	*pubsub.Publisher[Mode]
	Now       func() time.Time
	interval  time.Duration
	logger    *slog.Logger
	refresh   chan struct{}
	lock      sync.RWMutex
	mode      Mode
	published bool
}

func New(prefs Preferences, suspension Suspender, indicator Indicator, interval time.Duration, logger *slog.Logger) *Presenter {
	return &Presenter{
		Preferences: prefs,
		Suspension:  suspension,
		Indicator:   indicator,
		Publisher:   pubsub.New[Mode](logger.With(slog.String("component", "pubsub"))),
		Now:         time.Now,
		interval:    interval,
		logger:      logger,
		refresh:     make(chan struct{}, 1),
	}
}

// CurrentMode computes the mode from the current suspension state, time and active window.
func (p *Presenter) CurrentMode() Mode {
	if p.Suspension.IsSuspended() {
		return Suspended
	}
	if p.Preferences.ActiveWindow().Contains(p.Now().Hour()) {
		return Active
	}
	return Inactive
}

// LastMode returns the mode that was last published. It returns false if no mode has been published yet.
func (p *Presenter) LastMode() (Mode, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.mode, p.published
}

// Refresh requests the Presenter to recompute the mode. It never blocks: if a refresh is already pending, the
// request is merged with it.
func (p *Presenter) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run shows the current mode and keeps it up to date until ctx is canceled. On exit, the Indicator is released.
func (p *Presenter) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")
	defer p.release()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.update()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-p.refresh:
		}
		p.update()
	}
}

func (p *Presenter) update() {
	mode := p.CurrentMode()

	p.lock.Lock()
	changed := !p.published || mode != p.mode
	p.mode = mode
	p.published = true
	p.lock.Unlock()

	if !changed {
		return
	}
	p.logger.Debug("mode changed", slog.String("mode", mode.String()))
	if p.Indicator != nil {
		p.Indicator.Show(mode)
	}
	p.Publisher.Publish(mode)
}

func (p *Presenter) release() {
	if c, ok := p.Indicator.(io.Closer); ok {
		if err := c.Close(); err != nil {
			p.logger.Warn("failed to release indicator", slog.Any("err", err))
		}
	}
}
