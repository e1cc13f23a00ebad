package preferences

import (
	"encoding/json"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func readFile(t *testing.T, path string) map[string]any {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(content, &record))
	return record
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Preferences
		written map[string]any
	}{
		{
			name: "missing",
			want: Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "valid",
			content: `{"work_start_hour": 9, "work_end_hour": 19, "sound_enabled": false}`,
			want:    Preferences{WorkStartHour: 9, WorkEndHour: 19, SoundEnabled: false},
			written: map[string]any{
				"work_start_hour": 9.0,
				"work_end_hour":   19.0,
				"sound_enabled":   false,
			},
		},
		{
			name:    "partial",
			content: `{"work_start_hour": 6, "theme": "dark"}`,
			want:    Preferences{WorkStartHour: 6, WorkEndHour: 18, SoundEnabled: true},
			written: map[string]any{
				"work_start_hour": 6.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
				"theme":           "dark",
			},
		},
		{
			name:    "malformed",
			content: `{"work_start_hour": `,
			want:    Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "out of range",
			content: `{"work_start_hour": 8, "work_end_hour": 25, "sound_enabled": true}`,
			want:    Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "wrong type",
			content: `{"work_start_hour": "9", "work_end_hour": 19, "sound_enabled": true}`,
			want:    Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "wrong type for sound",
			content: `{"work_start_hour": 9, "work_end_hour": 19, "sound_enabled": "0"}`,
			want:    Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "fractional hour",
			content: `{"work_start_hour": 8.9, "work_end_hour": 19, "sound_enabled": true}`,
			want:    Default,
			written: map[string]any{
				"work_start_hour": 8.0,
				"work_end_hour":   18.0,
				"sound_enabled":   true,
			},
		},
		{
			name:    "start after end is kept",
			content: `{"work_start_hour": 18, "work_end_hour": 8, "sound_enabled": true}`,
			want:    Preferences{WorkStartHour: 18, WorkEndHour: 8, SoundEnabled: true},
			written: map[string]any{
				"work_start_hour": 18.0,
				"work_end_hour":   8.0,
				"sound_enabled":   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "workbell", "preferences.json")
			if tt.content != "" {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			s := Load(path, slog.New(slog.DiscardHandler))
			assert.Equal(t, tt.want, s.Snapshot())
			assert.Equal(t, tt.want.Window(), s.ActiveWindow())
			assert.Equal(t, tt.want.SoundEnabled, s.SoundEnabled())
			assert.Equal(t, tt.written, readFile(t, path))
		})
	}
}

func TestLoadReadOnly(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences.json")
		s := LoadReadOnly(path, slog.New(slog.DiscardHandler))
		assert.Equal(t, Default, s.Snapshot())
		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences.json")
		const content = `{"work_start_hour": `
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s := LoadReadOnly(path, slog.New(slog.DiscardHandler))
		assert.Equal(t, Default, s.Snapshot())
		s.SetSoundEnabled(false)
		assert.False(t, s.SoundEnabled())

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(written))
	})
}

func TestStore_Set(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	s := Load(path, slog.New(slog.DiscardHandler))

	require.NoError(t, s.SetActiveWindow(alarm.Window{Start: 7, End: 17}))
	assert.Equal(t, alarm.Window{Start: 7, End: 17}, s.ActiveWindow())
	assert.Equal(t, 7, s.Get(KeyWorkStartHour))

	s.SetSoundEnabled(false)
	assert.False(t, s.SoundEnabled())

	// changes are persisted
	s2 := Load(path, slog.New(slog.DiscardHandler))
	assert.Equal(t, Preferences{WorkStartHour: 7, WorkEndHour: 17, SoundEnabled: false}, s2.Snapshot())

	// invalid hours are rejected
	assert.ErrorIs(t, s.SetActiveWindow(alarm.Window{Start: 7, End: 24}), alarm.ErrInvalidHour)
	assert.Equal(t, alarm.Window{Start: 7, End: 17}, s.ActiveWindow())
}

func TestStore_Get_Default(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "preferences.json"), slog.New(slog.DiscardHandler))
	assert.Equal(t, 8, s.Get(KeyWorkStartHour))
	assert.Nil(t, s.Get("unknown"))
}

func TestStore_Unwritable(t *testing.T) {
	// a regular file as the parent directory makes every write fail
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	path := filepath.Join(blocker, "preferences.json")

	s := Load(path, slog.New(slog.DiscardHandler))
	assert.Equal(t, Default, s.Snapshot())

	// updates still apply in memory
	require.NoError(t, s.SetActiveWindow(alarm.Window{Start: 9, End: 19}))
	assert.Equal(t, alarm.Window{Start: 9, End: 19}, s.ActiveWindow())
	_, err := os.Stat(path)
	assert.Error(t, err)
}
