package input

import (
	"sync/atomic"
	"time"
)

// Metrics tracks input translation counters.
type Metrics struct {
	keyEventsTotal atomic.Uint64
	bytesWritten   atomic.Uint64
	droppedEvents  atomic.Uint64

	startTime time.Time
	enabled   atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordKeyEvent records an incoming key event.
func (m *Metrics) RecordKeyEvent() {
	if !m.enabled.Load() {
		return
	}
	m.keyEventsTotal.Add(1)
}

// RecordBytesWritten records bytes written downstream.
func (m *Metrics) RecordBytesWritten(n uint64) {
	if !m.enabled.Load() {
		return
	}
	m.bytesWritten.Add(n)
}

// RecordDroppedEvent records an event dropped for lack of an encoding.
func (m *Metrics) RecordDroppedEvent() {
	if !m.enabled.Load() {
		return
	}
	m.droppedEvents.Add(1)
}

// KeyEventsTotal returns the total number of key events seen.
func (m *Metrics) KeyEventsTotal() uint64 {
	return m.keyEventsTotal.Load()
}

// DroppedEvents returns the total number of dropped events.
func (m *Metrics) DroppedEvents() uint64 {
	return m.droppedEvents.Load()
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeyEventsTotal  uint64
	BytesWritten    uint64
	DroppedEvents   uint64
	EventsPerSecond float64
	Uptime          time.Duration
}

// Snapshot returns a point-in-time view of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	uptime := time.Since(m.startTime)
	keys := m.keyEventsTotal.Load()

	snap := MetricsSnapshot{
		KeyEventsTotal: keys,
		BytesWritten:   m.bytesWritten.Load(),
		DroppedEvents:  m.droppedEvents.Load(),
		Uptime:         uptime,
	}
	if uptime > 0 {
		snap.EventsPerSecond = float64(keys) / uptime.Seconds()
	}
	return snap
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.keyEventsTotal.Store(0)
	m.bytesWritten.Store(0)
	m.droppedEvents.Store(0)
	m.startTime = time.Now()
}
