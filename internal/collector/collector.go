// Package collector exports the workbell status as Prometheus metrics.
package collector

import (
	"github.com/clambin/workbell/internal/control"
	"github.com/clambin/workbell/internal/status"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	statusMode = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "status", "mode"),
		"Current status, if the value is 1. Label mode specifies the status",
		[]string{"mode"},
		nil,
	)
	statusSuspended = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "status", "suspended"),
		"1 if alarms are suspended",
		nil,
		nil,
	)
	statusResumeAt = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "status", "resume_timestamp_seconds"),
		"Time at which the current suspension ends",
		nil,
		nil,
	)
	soundEnabled = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "", "sound_enabled"),
		"1 if the alarm sound is enabled",
		nil,
		nil,
	)
	windowStart = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "active_window", "start_hour"),
		"First hour of the active window",
		nil,
		nil,
	)
	windowEnd = prometheus.NewDesc(
		prometheus.BuildFQName("workbell", "active_window", "end_hour"),
		"Hour at which the active window ends",
		nil,
		nil,
	)
)

type StatusReader interface {
	Status() control.Status
}

type Collector struct {
	StatusReader StatusReader
}

var _ prometheus.Collector = Collector{}

func (c Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- statusMode
	ch <- statusSuspended
	ch <- statusResumeAt
	ch <- soundEnabled
	ch <- windowStart
	ch <- windowEnd
}

func (c Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.StatusReader.Status()

	for _, mode := range status.Modes {
		ch <- prometheus.MustNewConstMetric(statusMode, prometheus.GaugeValue, boolValue(mode == s.Mode), mode.String())
	}
	ch <- prometheus.MustNewConstMetric(statusSuspended, prometheus.GaugeValue, boolValue(s.Suspended))
	if s.ResumeAt != nil {
		ch <- prometheus.MustNewConstMetric(statusResumeAt, prometheus.GaugeValue, float64(s.ResumeAt.Unix()))
	}
	ch <- prometheus.MustNewConstMetric(soundEnabled, prometheus.GaugeValue, boolValue(s.SoundEnabled))
	ch <- prometheus.MustNewConstMetric(windowStart, prometheus.GaugeValue, float64(s.Window.Start))
	ch <- prometheus.MustNewConstMetric(windowEnd, prometheus.GaugeValue, float64(s.Window.End))
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
