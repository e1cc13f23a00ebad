package indicator_test

import (
	"bytes"
	"errors"
	"github.com/clambin/workbell/internal/indicator"
	"github.com/clambin/workbell/internal/indicator/mocks"
	"github.com/clambin/workbell/internal/status"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestIndicators_Show(t *testing.T) {
	testCases := []struct {
		name  string
		mode  status.Mode
		color string
		title string
	}{
		{name: "active", mode: status.Active, color: "good", title: "workbell is active"},
		{name: "inactive", mode: status.Inactive, color: "#808080", title: "workbell is inactive"},
		{name: "suspended", mode: status.Suspended, color: "warning", title: "workbell is suspended"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			s := mocks.NewSlackSender(t)
			s.EXPECT().Send("workbell", mock.AnythingOfType("[]slack.Attachment")).RunAndReturn(func(_ string, attachments []slack.Attachment) error {
				require.Len(t, attachments, 1)
				assert.Equal(t, tt.color, attachments[0].Color)
				assert.Equal(t, tt.title, attachments[0].Title)
				return nil
			}).Once()

			i := indicator.Indicators{
				&indicator.SLogIndicator{Logger: slog.New(slog.NewTextHandler(&logs, nil))},
				&indicator.SlackIndicator{Slack: s, Channel: "workbell", Logger: slog.New(slog.DiscardHandler)},
			}
			i.Show(tt.mode)
			assert.Contains(t, logs.String(), "mode="+tt.mode.String())
		})
	}
}

func TestSlackIndicator_Failure(t *testing.T) {
	var logs bytes.Buffer
	s := mocks.NewSlackSender(t)
	s.EXPECT().Send("", mock.Anything).Return(errors.New("not connected")).Once()

	i := indicator.SlackIndicator{Slack: s, Logger: slog.New(slog.NewTextHandler(&logs, nil))}
	i.Show(status.Active)
	assert.Contains(t, logs.String(), "not connected")
}

func TestFileIndicator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "workbell", "status")
	f := indicator.FileIndicator{Path: path, Logger: slog.New(slog.DiscardHandler)}

	f.Show(status.Active)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "active\n", string(content))

	f.Show(status.Suspended)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "suspended\n", string(content))

	require.NoError(t, f.Close())
	assert.NoFileExists(t, path)

	// closing twice is fine
	assert.NoError(t, f.Close())
}

func TestIndicators_Close(t *testing.T) {
	dir := t.TempDir()
	first := indicator.FileIndicator{Path: filepath.Join(dir, "first"), Logger: slog.New(slog.DiscardHandler)}
	second := indicator.FileIndicator{Path: filepath.Join(dir, "second"), Logger: slog.New(slog.DiscardHandler)}

	i := indicator.Indicators{
		&indicator.SLogIndicator{Logger: slog.New(slog.DiscardHandler)},
		&first,
		&second,
	}
	i.Show(status.Inactive)
	assert.FileExists(t, first.Path)
	assert.FileExists(t, second.Path)

	require.NoError(t, i.Close())
	assert.NoFileExists(t, first.Path)
	assert.NoFileExists(t, second.Path)
}
