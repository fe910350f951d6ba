package metrics

import (
	"slices"
	"sync"
	"time"
)

// DefaultLatencySamples is the ring size used when none is configured.
const DefaultLatencySamples = 1024

type sample struct {
	at time.Time
	d  time.Duration
}

// LatencySnapshot is a point-in-time aggregate of latency samples.
type LatencySnapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// LatencyStats keeps the most recent latencies in a fixed-size ring.
// Snapshots only consider samples younger than the window, so memory and
// snapshot cost are bounded by the ring size regardless of traffic.
type LatencyStats struct {
	mu     sync.Mutex
	window time.Duration
	ring   []sample
	next   int
	filled int
}

func NewLatencyStats(window time.Duration, size int) *LatencyStats {
	if window <= 0 {
		window = time.Hour
	}
	if size <= 0 {
		size = DefaultLatencySamples
	}
	return &LatencyStats{
		window: window,
		ring:   make([]sample, size),
	}
}

// Record stores d, overwriting the oldest sample once the ring is full.
func (s *LatencyStats) Record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring[s.next] = sample{at: time.Now(), d: max(d, 0)}
	s.next = (s.next + 1) % len(s.ring)
	if s.filled < len(s.ring) {
		s.filled++
	}
}

func (s *LatencyStats) Snapshot() LatencySnapshot {
	cutoff := time.Now().Add(-s.window)

	s.mu.Lock()
	us := make([]int64, 0, s.filled)
	for _, sm := range s.ring[:s.filled] {
		if !sm.at.Before(cutoff) {
			us = append(us, sm.d.Microseconds())
		}
	}
	s.mu.Unlock()

	if len(us) == 0 {
		return LatencySnapshot{}
	}
	slices.Sort(us)

	var total int64
	for _, v := range us {
		total += v
	}
	return LatencySnapshot{
		Count: len(us),
		MinUs: us[0],
		MaxUs: us[len(us)-1],
		AvgUs: float64(total) / float64(len(us)),
		P50Us: quantile(us, 0.50),
		P95Us: quantile(us, 0.95),
		P99Us: quantile(us, 0.99),
	}
}

// quantile interpolates linearly between the two closest ranks of a
// sorted, non-empty slice.
func quantile(sorted []int64, q float64) float64 {
	rank := q * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return float64(sorted[len(sorted)-1])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}

// ObserveConversion records one request that converted n inputs in d, in
// both the rolling stats and the Prometheus collectors.
func ObserveConversion(stats *LatencyStats, op string, n int, d time.Duration) {
	ConversionsTotal.WithLabelValues(op).Add(float64(n))
	ConversionLatency.WithLabelValues(op).Observe(d.Seconds())
	if stats != nil {
		stats.Record(d)
	}
}
