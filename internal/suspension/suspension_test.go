package suspension_test

import (
	"github.com/clambin/workbell/internal/suspension"
	"github.com/clambin/workbell/internal/suspension/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func newController(t *testing.T, clock *fakeClock) *suspension.Controller {
	t.Helper()
	r := mocks.NewRefresher(t)
	r.EXPECT().Refresh().Maybe()
	c := suspension.New(slog.New(slog.DiscardHandler))
	c.Now = clock.Now
	c.Refresher = r
	return c
}

func TestController_Pause_Expires(t *testing.T) {
	start := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)
	clock := fakeClock{now: start}
	c := newController(t, &clock)

	assert.False(t, c.IsSuspended())
	require.NoError(t, c.Pause(30))

	for _, offset := range []time.Duration{0, time.Minute, 15 * time.Minute, 30*time.Minute - time.Second} {
		clock.now = start.Add(offset)
		assert.True(t, c.IsSuspended(), offset.String())
	}

	resumeAt, ok := c.ResumeAt()
	require.True(t, ok)
	assert.Equal(t, start.Add(30*time.Minute), resumeAt)

	for _, offset := range []time.Duration{30 * time.Minute, time.Hour} {
		clock.now = start.Add(offset)
		assert.False(t, c.IsSuspended(), offset.String())
	}

	_, ok = c.ResumeAt()
	assert.False(t, ok)
}

func TestController_Resume(t *testing.T) {
	clock := fakeClock{now: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)}
	c := newController(t, &clock)

	require.NoError(t, c.Pause(60))
	assert.True(t, c.IsSuspended())

	c.Resume()
	assert.False(t, c.IsSuspended())
	_, ok := c.ResumeAt()
	assert.False(t, ok)

	// resume while not suspended is harmless
	c.Resume()
	assert.False(t, c.IsSuspended())
}

func TestController_Pause_Invalid(t *testing.T) {
	c := suspension.New(slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, c.Pause(0), suspension.ErrInvalidDuration)
	assert.ErrorIs(t, c.Pause(-5), suspension.ErrInvalidDuration)
	assert.False(t, c.IsSuspended())
}

func TestController_Refresh(t *testing.T) {
	r := mocks.NewRefresher(t)
	r.EXPECT().Refresh().Twice()

	c := suspension.New(slog.New(slog.DiscardHandler))
	c.Refresher = r

	require.NoError(t, c.Pause(5))
	c.Resume()
}

func TestController_Pause_Extends(t *testing.T) {
	start := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)
	clock := fakeClock{now: start}
	c := newController(t, &clock)

	require.NoError(t, c.Pause(30))
	clock.now = start.Add(20 * time.Minute)
	require.NoError(t, c.Pause(30))

	clock.now = start.Add(45 * time.Minute)
	assert.True(t, c.IsSuspended())
	clock.now = start.Add(50 * time.Minute)
	assert.False(t, c.IsSuspended())
}
