package services

import (
	"io"

	"github.com/rcrowley/go-metrics"

	"text-translator/models"
)

// Metrics keeps request latency and outcome counts per action kind.
type Metrics struct {
	registry metrics.Registry
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{registry: metrics.NewRegistry()}
}

// Observe records a resolved action. Pending actions are ignored.
func (m *Metrics) Observe(a *models.Action) {
	if m == nil || a == nil || !a.Done() {
		return
	}
	if d := a.Duration(); d > 0 {
		m.timer(a.Kind).Update(d)
	}
	m.counter(a.Kind, a.Status).Inc(1)
}

// Count returns how many actions of kind ended with status.
func (m *Metrics) Count(kind models.ActionKind, status models.ActionStatus) int64 {
	return m.counter(kind, status).Count()
}

// Latency returns the request latency timer for kind.
func (m *Metrics) Latency(kind models.ActionKind) metrics.Timer {
	return m.timer(kind)
}

// WriteTo dumps every metric to w in go-metrics' text format.
func (m *Metrics) WriteTo(w io.Writer) {
	metrics.WriteOnce(m.registry, w)
}

func (m *Metrics) timer(kind models.ActionKind) metrics.Timer {
	return metrics.GetOrRegisterTimer(string(kind)+".latency", m.registry)
}

func (m *Metrics) counter(kind models.ActionKind, status models.ActionStatus) metrics.Counter {
	return metrics.GetOrRegisterCounter(string(kind)+"."+string(status), m.registry)
}
