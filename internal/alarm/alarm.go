// Package alarm holds the vocabulary shared by the scheduler, the sinks and the control surface:
// the alarm kinds and the active-hour window.
package alarm

import (
	"errors"
	"fmt"
	"github.com/clambin/go-common/set"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind  = errors.New("unknown alarm kind")
	ErrInvalidHour  = errors.New("hour must be between 0 and 23")
	ErrInvalidRange = errors.New("invalid hour range")
)

// Kind identifies one of the two alarms that fire during each active hour.
type Kind string

const (
	HalfPast Kind = "halfpast"
	Bell     Kind = "bell"
)

// Kinds lists all alarm kinds, in the order they fire within an hour.
var Kinds = []Kind{HalfPast, Bell}

// Minute returns the minute of the hour at which the alarm fires.
func (k Kind) Minute() int {
	switch k {
	case HalfPast:
		return 29
	case Bell:
		return 59
	default:
		return -1
	}
}

func (k Kind) String() string {
	return string(k)
}

// Label is the human-readable form used in notifications, e.g. "bell (:59)".
func (k Kind) Label() string {
	return fmt.Sprintf("%s (:%02d)", k, k.Minute())
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case HalfPast, Bell:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KindAt returns the kind that fires at the given minute, if any.
func KindAt(minute int) (Kind, bool) {
	for _, k := range Kinds {
		if k.Minute() == minute {
			return k, true
		}
	}
	return "", false
}

// Window is the range of hours [Start, End) during which alarms may fire.
//
// The comparison is purely numeric: a window with Start >= End never contains any hour.
// Overnight windows (e.g. 22-6) are not supported.
type Window struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	return w.Start <= hour && hour < w.End
}

func (w Window) String() string {
	return fmt.Sprintf("%d:00 - %d:00", w.Start, w.End)
}

// Validate checks that both bounds are valid hours. It does not check that Start < End.
func (w Window) Validate() error {
	for _, h := range []int{w.Start, w.End} {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: %d", ErrInvalidHour, h)
		}
	}
	return nil
}

// ParseWindow parses "8-18" (or "8:00-18:00") into a Window.
func ParseWindow(s string) (Window, error) {
	from, to, ok := strings.Cut(strings.ReplaceAll(s, " ", ""), "-")
	if !ok {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	var w Window
	var err error
	if w.Start, err = parseHour(from); err != nil {
		return Window{}, err
	}
	if w.End, err = parseHour(to); err != nil {
		return Window{}, err
	}
	return w, w.Validate()
}

func parseHour(s string) (int, error) {
	s = strings.TrimSuffix(s, ":00")
	h, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return h, nil
}

// Presets are the active windows offered to the user.
var Presets = []Window{
	{Start: 6, End: 16},
	{Start: 7, End: 17},
	{Start: 8, End: 18},
	{Start: 9, End: 19},
}

var presets = set.New(Presets...)

// IsPreset reports whether w is one of the Presets.
func IsPreset(w Window) bool {
	return presets.Contains(w)
}
