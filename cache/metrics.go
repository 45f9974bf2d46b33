package cache

import (
	"sync/atomic"
	"time"
)

// Metrics accumulates hit/miss counts and retrieval latency. It is an
// observability sink only; nothing reads it on the request path.
type Metrics struct {
	hits   atomic.Int64
	misses atomic.Int64

	hitLatencyMicros  atomic.Int64
	missLatencyMicros atomic.Int64
	hitSamples        atomic.Int64
	missSamples       atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the accounting.
type MetricsSnapshot struct {
	Hits   int64
	Misses int64

	AvgHitLatency  time.Duration
	AvgMissLatency time.Duration
}

func (m *Metrics) hit()  { m.hits.Add(1) }
func (m *Metrics) miss() { m.misses.Add(1) }

func (m *Metrics) recordLatency(fromCache bool, elapsed time.Duration) {
	if fromCache {
		m.hitLatencyMicros.Add(elapsed.Microseconds())
		m.hitSamples.Add(1)
		return
	}
	m.missLatencyMicros.Add(elapsed.Microseconds())
	m.missSamples.Add(1)
}

func (m *Metrics) snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
	}
	if n := m.hitSamples.Load(); n > 0 {
		s.AvgHitLatency = time.Duration(m.hitLatencyMicros.Load()/n) * time.Microsecond
	}
	if n := m.missSamples.Load(); n > 0 {
		s.AvgMissLatency = time.Duration(m.missLatencyMicros.Load()/n) * time.Microsecond
	}
	return s
}
