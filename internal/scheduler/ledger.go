package scheduler

import (
	"github.com/clambin/workbell/internal/alarm"
	"time"
)

// Ledger records, for each kind, the hour in which it last fired. A kind fires at most once per hour.
//
// Hours are recorded as local calendar hours rather than hour-of-day, so a window that is only one hour wide
// still fires again on the next day.
type Ledger map[alarm.Kind]time.Time

func hourOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// Fired reports whether kind already fired during the hour of t.
func (l Ledger) Fired(kind alarm.Kind, t time.Time) bool {
	last, ok := l[kind]
	return ok && last.Equal(hourOf(t))
}

// Record marks kind as fired during the hour of t.
func (l Ledger) Record(kind alarm.Kind, t time.Time) {
	l[kind] = hourOf(t)
}
