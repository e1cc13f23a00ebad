package scheduler

import (
	"github.com/clambin/workbell/internal/alarm"
	"github.com/prometheus/client_golang/prometheus"
)

// Result is the outcome of a fire decision.
type Result string

const (
	Fired      Result = "fired"
	Suppressed Result = "suppressed"
	Failed     Result = "failed"
)

var _ prometheus.Collector = &Metrics{}

// Metrics counts the alarms the scheduler decided to fire, by kind and outcome.
type Metrics struct {
	alarms *prometheus.CounterVec
}

func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		alarms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "alarms_total",
			Help:      "Number of alarms due, by kind and result",
		}, []string{"kind", "result"}),
	}
}

func (m *Metrics) record(kind alarm.Kind, result Result) {
	if m != nil {
		m.alarms.WithLabelValues(string(kind), string(result)).Inc()
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.alarms.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.alarms.Collect(ch)
}
