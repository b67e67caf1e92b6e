package authsrv

import "sync/atomic"

// MetricID names one operation counter.
type MetricID uint16

const (
	// MetricRegisterSuccess counts accounts created.
	MetricRegisterSuccess MetricID = iota
	// MetricRegisterDuplicate counts registrations rejected by the atomic insert.
	MetricRegisterDuplicate
	// MetricLoginSuccess counts authentications that issued a token.
	MetricLoginSuccess
	// MetricLoginFailure counts authentications that ended in invalid credentials.
	MetricLoginFailure
	// MetricExternalUnresolved counts external flows rejected by the provider.
	MetricExternalUnresolved
	// MetricTokenIssued counts tokens written to the store.
	MetricTokenIssued
	// MetricTokenInspected counts inspect calls that found a live token.
	MetricTokenInspected
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free operation counters. A nil or disabled Metrics is a
// no-op on every method.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a [Metrics] per cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are being recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value reads a single counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter. Counters are read individually; the
// snapshot is not a single atomic cut across all of them.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricIDCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
