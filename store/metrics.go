package store

import "sync/atomic"

// MetricsSnapshot is a point-in-time view of a store's counters.
type MetricsSnapshot struct {
	Dispatches        int64
	RejectedDispatch  int64
	Notifications     int64
	ActiveSubscribers int64
}

// Metrics tracks store activity with atomic counters.
type Metrics struct {
	dispatches       atomic.Int64
	rejectedDispatch atomic.Int64
	notifications    atomic.Int64
	subscribers      atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordDispatch(delta int) {
	m.dispatches.Add(int64(delta))
}

func (m *Metrics) RecordRejected(delta int) {
	m.rejectedDispatch.Add(int64(delta))
}

func (m *Metrics) RecordNotifications(delta int) {
	m.notifications.Add(int64(delta))
}

func (m *Metrics) RecordSubscriber(delta int) {
	m.subscribers.Add(int64(delta))
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Dispatches:        m.dispatches.Load(),
		RejectedDispatch:  m.rejectedDispatch.Load(),
		Notifications:     m.notifications.Load(),
		ActiveSubscribers: m.subscribers.Load(),
	}
}
