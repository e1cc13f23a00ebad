package control_test

import (
	"context"
	"errors"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/clambin/workbell/internal/control"
	"github.com/clambin/workbell/internal/preferences"
	"github.com/clambin/workbell/internal/sink/mocks"
	"github.com/clambin/workbell/internal/status"
	"github.com/clambin/workbell/internal/suspension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

type testControl struct {
	*control.Control
	prefs      *preferences.Store
	suspension *suspension.Controller
	presenter  *status.Presenter
	sink       *mocks.Notifier
	canceled   bool
}

func newTestControl(t *testing.T) *testControl {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	now := func() time.Time { return time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local) }

	tc := testControl{
		prefs:      preferences.Load(filepath.Join(t.TempDir(), "prefs.json"), logger),
		suspension: suspension.New(logger),
		sink:       mocks.NewNotifier(t),
	}
	tc.suspension.Now = now
	tc.presenter = status.New(tc.prefs, tc.suspension, nil, time.Minute, logger)
	tc.presenter.Now = now
	tc.suspension.Refresher = tc.presenter
	tc.Control = control.New(tc.prefs, tc.suspension, tc.presenter, tc.sink, func() { tc.canceled = true }, logger)
	return &tc
}

func TestControl_Status(t *testing.T) {
	c := newTestControl(t)

	assert.Equal(t, control.Status{
		Mode:         status.Active,
		Window:       alarm.Window{Start: 8, End: 18},
		Preset:       true,
		SoundEnabled: true,
	}, c.Status())

	require.NoError(t, c.Pause(30))
	s := c.Status()
	assert.Equal(t, status.Suspended, s.Mode)
	assert.True(t, s.Suspended)
	require.NotNil(t, s.ResumeAt)
	assert.Equal(t, "10:30", s.ResumeAt.Format("15:04"))

	c.Resume()
	s = c.Status()
	assert.Equal(t, status.Active, s.Mode)
	assert.False(t, s.Suspended)
	assert.Nil(t, s.ResumeAt)
}

func TestControl_Pause_Invalid(t *testing.T) {
	c := newTestControl(t)
	assert.ErrorIs(t, c.Pause(0), suspension.ErrInvalidDuration)
	assert.False(t, c.Status().Suspended)
}

func TestControl_SetActiveWindow(t *testing.T) {
	c := newTestControl(t)

	require.NoError(t, c.SetActiveWindow(alarm.Window{Start: 11, End: 20}))
	s := c.Status()
	assert.Equal(t, alarm.Window{Start: 11, End: 20}, s.Window)
	assert.False(t, s.Preset)
	assert.Equal(t, status.Inactive, s.Mode)
	assert.Equal(t, alarm.Window{Start: 11, End: 20}, c.prefs.ActiveWindow())

	assert.ErrorIs(t, c.SetActiveWindow(alarm.Window{Start: 11, End: 24}), alarm.ErrInvalidHour)
	assert.Equal(t, alarm.Window{Start: 11, End: 20}, c.prefs.ActiveWindow())
}

func TestControl_SetSound(t *testing.T) {
	c := newTestControl(t)

	c.SetSound(false)
	assert.False(t, c.Status().SoundEnabled)
	assert.False(t, c.prefs.SoundEnabled())

	c.SetSound(true)
	assert.True(t, c.Status().SoundEnabled)
}

func TestControl_TestSound(t *testing.T) {
	c := newTestControl(t)
	ctx := context.Background()

	// test sound ignores suspension and sound setting
	require.NoError(t, c.Pause(60))
	c.SetSound(false)

	c.sink.EXPECT().Notify(ctx, alarm.Bell).Return(nil).Once()
	assert.NoError(t, c.TestSound(ctx, alarm.Bell))

	c.sink.EXPECT().Notify(ctx, alarm.HalfPast).Return(errors.New("no speaker")).Once()
	err := c.TestSound(ctx, alarm.HalfPast)
	require.Error(t, err)
	assert.Equal(t, "test halfpast: no speaker", err.Error())
}

func TestControl_Exit(t *testing.T) {
	c := newTestControl(t)
	c.Exit()
	assert.True(t, c.canceled)
}
