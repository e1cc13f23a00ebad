// Package preferences persists the user's preferences: the active-hour window and whether sounds are enabled.
//
// The store never fails. If the preferences file is missing, unreadable or invalid, the defaults are used
// and written back. Failures to write are logged and otherwise ignored.
package preferences

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
)

const (
	KeyWorkStartHour = "work_start_hour"
	KeyWorkEndHour   = "work_end_hour"
	KeySoundEnabled  = "sound_enabled"
)

// Preferences is the persisted record.
type Preferences struct {
	WorkStartHour int  `koanf:"work_start_hour" json:"work_start_hour" yaml:"work_start_hour" validate:"min=0,max=23"`
	WorkEndHour   int  `koanf:"work_end_hour" json:"work_end_hour" yaml:"work_end_hour" validate:"min=0,max=23"`
	SoundEnabled  bool `koanf:"sound_enabled" json:"sound_enabled" yaml:"sound_enabled"`
}

// Window returns the active-hour window of the preferences.
func (p Preferences) Window() alarm.Window {
	return alarm.Window{Start: p.WorkStartHour, End: p.WorkEndHour}
}

// Default preferences
var Default = Preferences{
	WorkStartHour: 8,
	WorkEndHour:   18,
	SoundEnabled:  true,
}

var defaults = map[string]any{
	KeyWorkStartHour: Default.WorkStartHour,
	KeyWorkEndHour:   Default.WorkEndHour,
	KeySoundEnabled:  Default.SoundEnabled,
}

// Store holds the preferences in memory and rewrites the preferences file on every change.
type Store struct {
	path     string
	logger   *slog.Logger
	validate *validator.Validate
	readOnly bool
	lock     sync.RWMutex
	k        *koanf.Koanf
}

// Load reads the preferences from path. It always returns a usable Store.
func Load(path string, logger *slog.Logger) *Store {
	s := Store{
		path:     path,
		logger:   logger,
		validate: validator.New(),
	}
	s.load()
	return &s
}

// LoadReadOnly reads the preferences from path, like Load, but never writes the preferences file.
// Changes to the returned Store are kept in memory only.
func LoadReadOnly(path string, logger *slog.Logger) *Store {
	s := Store{
		path:     path,
		logger:   logger,
		validate: validator.New(),
		readOnly: true,
	}
	s.load()
	return &s
}

func (s *Store) load() {
	s.lock.Lock()
	defer s.lock.Unlock()

	k := koanf.New(".")
	err := k.Load(file.Provider(s.path), kjson.Parser())
	var backFilled bool
	if err == nil {
		backFilled, err = s.normalize(k)
	}

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("no preferences found. using defaults", "path", s.path)
		} else {
			s.logger.Warn("invalid preferences. using defaults", "path", s.path, "err", err)
		}
		s.k = defaultKoanf()
		s.save()
		return
	}

	s.k = k
	if backFilled {
		s.save()
	}
	s.logger.Debug("preferences loaded", "path", s.path, "preferences", s.snapshot())
}

// normalize back-fills missing keys from the defaults, validates the result and replaces the parsed values
// by their typed equivalent (JSON numbers are parsed as float64). Unknown keys are kept.
func (s *Store) normalize(k *koanf.Koanf) (bool, error) {
	var backFilled bool
	for key, value := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, value); err != nil {
				return false, err
			}
			backFilled = true
		}
	}

	p, err := decode(k)
	if err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	if err = s.validate.Struct(p); err != nil {
		return false, fmt.Errorf("validate: %w", err)
	}

	for key, value := range map[string]any{
		KeyWorkStartHour: p.WorkStartHour,
		KeyWorkEndHour:   p.WorkEndHour,
		KeySoundEnabled:  p.SoundEnabled,
	} {
		if err := k.Set(key, value); err != nil {
			return false, err
		}
	}
	return backFilled, nil
}

// decode converts the record into Preferences. Values of the wrong type are rejected rather than converted.
func decode(k *koanf.Koanf) (Preferences, error) {
	var p Preferences
	// mapstructure truncates floats to ints, even when decoding strictly
	for _, key := range []string{KeyWorkStartHour, KeyWorkEndHour} {
		if v, ok := k.Get(key).(float64); ok && v != math.Trunc(v) {
			return p, fmt.Errorf("%s: not a whole hour: %v", key, v)
		}
	}
	err := k.UnmarshalWithConf("", &p, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &p,
			TagName:          "koanf",
			WeaklyTypedInput: false,
		},
	})
	return p, err
}

func defaultKoanf() *koanf.Koanf {
	k := koanf.New(".")
	for key, value := range defaults {
		_ = k.Set(key, value)
	}
	return k
}

// save rewrites the full record. Must be called with the lock held.
func (s *Store) save() {
	if s.readOnly {
		return
	}
	if err := s.write(); err != nil {
		s.logger.Warn("failed to save preferences", "path", s.path, "err", err)
	}
}

func (s *Store) write() error {
	content, err := s.k.Marshal(kjson.Parser())
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var out bytes.Buffer
	if err = json.Indent(&out, content, "", "  "); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	out.WriteString("\n")
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, out.Bytes(), 0o644)
}

// Path returns the location of the preferences file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key, or its default if the key is not set.
func (s *Store) Get(key string) any {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.get(key)
}

func (s *Store) get(key string) any {
	if s.k.Exists(key) {
		return s.k.Get(key)
	}
	return defaults[key]
}

// Set updates key and persists all preferences. Persistence failures are logged, not returned.
func (s *Store) Set(key string, value any) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err := s.k.Set(key, value); err != nil {
		s.logger.Warn("failed to set preference", "key", key, "err", err)
		return
	}
	s.save()
}

// ActiveWindow returns the configured active-hour window.
func (s *Store) ActiveWindow() alarm.Window {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return alarm.Window{Start: s.int(KeyWorkStartHour), End: s.int(KeyWorkEndHour)}
}

// SetActiveWindow stores a new active-hour window. It only fails if either bound isn't a valid hour.
func (s *Store) SetActiveWindow(w alarm.Window) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	_ = s.k.Set(KeyWorkStartHour, w.Start)
	_ = s.k.Set(KeyWorkEndHour, w.End)
	s.save()
	s.logger.Info("active window changed", "window", w.String())
	return nil
}

// SoundEnabled reports whether alarms should produce sound.
func (s *Store) SoundEnabled() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if v, ok := s.get(KeySoundEnabled).(bool); ok {
		return v
	}
	return Default.SoundEnabled
}

// SetSoundEnabled enables or disables alarm sounds.
func (s *Store) SetSoundEnabled(enabled bool) {
	s.Set(KeySoundEnabled, enabled)
}

// Snapshot returns the current preferences.
func (s *Store) Snapshot() Preferences {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() Preferences {
	enabled, ok := s.get(KeySoundEnabled).(bool)
	if !ok {
		enabled = Default.SoundEnabled
	}
	return Preferences{
		WorkStartHour: s.int(KeyWorkStartHour),
		WorkEndHour:   s.int(KeyWorkEndHour),
		SoundEnabled:  enabled,
	}
}

func (s *Store) int(key string) int {
	switch v := s.get(key).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return defaults[key].(int)
	}
}
