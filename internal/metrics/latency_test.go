package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLatencyStatsSnapshotPercentiles(t *testing.T) {
	stats := NewLatencyStats(time.Hour, 0)
	stats.Record(100 * time.Microsecond)
	stats.Record(200 * time.Microsecond)
	stats.Record(300 * time.Microsecond)
	stats.Record(400 * time.Microsecond)
	stats.Record(500 * time.Microsecond)

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinUs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinUs)
	}
	if snap.MaxUs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxUs)
	}
	if snap.AvgUs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgUs)
	}
	if snap.P50Us != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Us)
	}
	if snap.P95Us != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Us)
	}
	if snap.P99Us != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Us)
	}
}

func TestLatencyStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewLatencyStats(10*time.Millisecond, 0)
	stats.Record(100 * time.Microsecond)
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}

	stats.Record(200 * time.Microsecond)
	snap = stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinUs != 200 || snap.MaxUs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", snap.MinUs, snap.MaxUs)
	}
}

func TestLatencyStatsRecordClampsNegativeDuration(t *testing.T) {
	stats := NewLatencyStats(time.Hour, 0)
	stats.Record(-10 * time.Microsecond)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinUs != 0 || snap.MaxUs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinUs, snap.MaxUs)
	}
}

func TestObserveConversion(t *testing.T) {
	before := testutil.ToFloat64(ConversionsTotal.WithLabelValues("test-op"))
	stats := NewLatencyStats(time.Hour, 0)

	ObserveConversion(stats, "test-op", 3, 50*time.Microsecond)
	ObserveConversion(nil, "test-op", 1, 70*time.Microsecond)

	if got := testutil.ToFloat64(ConversionsTotal.WithLabelValues("test-op")); got != before+4 {
		t.Errorf("expected counter %v, got %v", before+4, got)
	}
	if snap := stats.Snapshot(); snap.Count != 1 {
		t.Errorf("expected 1 recorded sample, got %d", snap.Count)
	}
}

func TestLatencyStatsRingKeepsNewestSamples(t *testing.T) {
	stats := NewLatencyStats(time.Hour, 4)
	for i := 1; i <= 10; i++ {
		stats.Record(time.Duration(i) * time.Microsecond)
	}

	snap := stats.Snapshot()
	if snap.Count != 4 {
		t.Fatalf("expected count=4, got %d", snap.Count)
	}
	if snap.MinUs != 7 || snap.MaxUs != 10 {
		t.Fatalf("expected newest samples 7..10, got min=%d max=%d", snap.MinUs, snap.MaxUs)
	}
}

func TestLatencyStatsEmptySnapshot(t *testing.T) {
	if snap := NewLatencyStats(time.Hour, 8).Snapshot(); snap != (LatencySnapshot{}) {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}
