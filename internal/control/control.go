// Package control implements the operations offered to the user. Transports (the Slack bot, the HTTP API) map their
// requests onto a Control.
package control

import (
	"context"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/status"
	"log/slog"
	"time"
)

type Preferences interface {
	ActiveWindow() alarm.Window
	SetActiveWindow(alarm.Window) error
	SoundEnabled() bool
	SetSoundEnabled(bool)
}

type Suspension interface {
	Pause(minutes int) error
	Resume()
	ResumeAt() (time.Time, bool)
}

type Presenter interface {
	CurrentMode() status.Mode
	Refresh()
}

type Notifier interface {
	Notify(ctx context.Context, kind alarm.Kind) error
}

// Status is the current state of workbell, as reported to the user.
type Status struct {
	Mode         status.Mode  `json:"mode"`
	Window       alarm.Window `json:"window"`
	Preset       bool         `json:"preset"`
	Suspended    bool         `json:"suspended"`
	ResumeAt     *time.Time   `json:"resumeAt,omitempty"`
	SoundEnabled bool         `json:"soundEnabled"`
}

// Controller is the set of operations a transport can invoke.
type Controller interface {
	TestSound(ctx context.Context, kind alarm.Kind) error
	Pause(minutes int) error
	Resume()
	SetActiveWindow(w alarm.Window) error
	SetSound(enabled bool)
	Status() Status
	Exit()
}

var _ Controller = &Control{}

type Control struct {
	Preferences Preferences
	Suspension  Suspension
	Presenter   Presenter
	Sink        Notifier
	cancel      context.CancelFunc
	logger      *slog.Logger
}

// New returns a Control. Calling Exit invokes cancel, which should stop the application.
func New(prefs Preferences, suspension Suspension, presenter Presenter, sink Notifier, cancel context.CancelFunc, logger *slog.Logger) *Control {
	return &Control{
		Preferences: prefs,
		Suspension:  suspension,
		Presenter:   presenter,
		Sink:        sink,
		cancel:      cancel,
		logger:      logger,
	}
}

// TestSound plays the alarm immediately, regardless of the active window, suspension or sound setting.
func (c *Control) TestSound(ctx context.Context, kind alarm.Kind) error {
	c.logger.Info("testing sound", slog.String("kind", kind.String()))
	if err := c.Sink.Notify(ctx, kind); err != nil {
		return fmt.Errorf("test %s: %w", kind, err)
	}
	return nil
}

func (c *Control) Pause(minutes int) error {
	return c.Suspension.Pause(minutes)
}

func (c *Control) Resume() {
	c.Suspension.Resume()
}

func (c *Control) SetActiveWindow(w alarm.Window) error {
	if err := c.Preferences.SetActiveWindow(w); err != nil {
		return err
	}
	c.Presenter.Refresh()
	return nil
}

func (c *Control) SetSound(enabled bool) {
	c.Preferences.SetSoundEnabled(enabled)
	c.logger.Info("sound setting changed", slog.Bool("enabled", enabled))
}

func (c *Control) Status() Status {
	w := c.Preferences.ActiveWindow()
	s := Status{
		Mode:         c.Presenter.CurrentMode(),
		Window:       w,
		Preset:       alarm.IsPreset(w),
		SoundEnabled: c.Preferences.SoundEnabled(),
	}
	if resumeAt, ok := c.Suspension.ResumeAt(); ok {
		s.Suspended = true
		s.ResumeAt = &resumeAt
	}
	return s
}

// Exit stops the application: the scheduler stops at its next iteration and the indicators are released.
func (c *Control) Exit() {
	c.logger.Info("exit requested")
	c.cancel()
}
