package goCell

import "sync/atomic"

// MetricID defines a public type used by goCell APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricSharedBorrow is an exported constant or variable used by the cell permission protocol.
	MetricSharedBorrow MetricID = iota
	// MetricExclusiveBorrow is an exported constant or variable used by the cell permission protocol.
	MetricExclusiveBorrow
	// MetricBorrowConflict is an exported constant or variable used by the cell permission protocol.
	MetricBorrowConflict
	// MetricBrandMismatch is an exported constant or variable used by the cell permission protocol.
	MetricBrandMismatch
	// MetricCellRead is an exported constant or variable used by the cell permission protocol.
	MetricCellRead
	// MetricCellWrite is an exported constant or variable used by the cell permission protocol.
	MetricCellWrite
	// MetricCellReplace is an exported constant or variable used by the cell permission protocol.
	MetricCellReplace
	// MetricConsumedAccess is an exported constant or variable used by the cell permission protocol.
	MetricConsumedAccess
	// MetricUseAfterRetire is an exported constant or variable used by the cell permission protocol.
	MetricUseAfterRetire

	metricCount
)

// Metrics holds the per-scope counters. All methods are safe for concurrent
// use; a nil *Metrics is a valid no-op receiver.
type Metrics struct {
	enabled  bool
	counters [metricCount]atomic.Uint64
}

// NewMetrics creates the counter set for one scope. When disabled, Inc is a
// no-op and every read reports zero.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// Value returns the current value of one counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricCount {
		return 0
	}
	return m.counters[id].Load()
}

// Snapshot returns a point-in-time copy of every counter. The map is empty
// when metrics are disabled.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricCount),
	}
	if m == nil || !m.enabled {
		return snapshot
	}
	for id := MetricID(0); id < metricCount; id++ {
		snapshot.Counters[id] = m.counters[id].Load()
	}
	return snapshot
}

// MetricsSnapshot defines a public type used by goCell APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}
