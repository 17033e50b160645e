package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop timings.
type Metrics struct {
	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	// Key handling
	keyCount    atomic.Uint64
	keyTotalNs  atomic.Int64
	keysDropped atomic.Uint64

	// File notices from the watcher
	notices atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRender records frame paint timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)
	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records key handling timing. Keys no command accepted count as
// dropped.
func (m *Metrics) RecordKey(duration time.Duration, consumed bool) {
	m.keyCount.Add(1)
	m.keyTotalNs.Add(duration.Nanoseconds())
	if !consumed {
		m.keysDropped.Add(1)
	}
}

// RecordNotice records a file change notice.
func (m *Metrics) RecordNotice() {
	m.notices.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renders := m.renderCount.Load()
	keys := m.keyCount.Load()

	s := MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		RenderCount: renders,
		MaxRender:   time.Duration(m.renderMaxNs.Load()),
		KeyCount:    keys,
		KeysDropped: m.keysDropped.Load(),
		Notices:     m.notices.Load(),
	}
	if renders > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(renders))
	}
	if keys > 0 {
		s.AvgKey = time.Duration(m.keyTotalNs.Load() / int64(keys))
	}
	return s
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	RenderCount uint64
	AvgRender   time.Duration
	MaxRender   time.Duration
	KeyCount    uint64
	AvgKey      time.Duration
	KeysDropped uint64
	Notices     uint64
}

// DropRate returns the percentage of keys no command accepted.
func (s MetricsSnapshot) DropRate() float64 {
	if s.KeyCount == 0 {
		return 0
	}
	return float64(s.KeysDropped) / float64(s.KeyCount) * 100
}
