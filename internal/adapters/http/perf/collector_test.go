package perf

import (
	"testing"
	"time"
)

// TestRecordAndSnapshot tests basic aggregation of request entries.
func TestRecordAndSnapshot(t *testing.T) {
	c := NewCollector(16)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: 20, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "event.List", DurationMs: 5, Timestamp: now})

	snap := c.Snapshot(5)
	if snap.TotalRecorded != 3 {
		t.Errorf("TotalRecorded = %d, want 3", snap.TotalRecorded)
	}
	if len(snap.SlowestPaths) != 1 {
		t.Fatalf("SlowestPaths len = %d, want 1", len(snap.SlowestPaths))
	}
	p := snap.SlowestPaths[0]
	if p.Path != "GET /" || p.Count != 2 || p.AvgMs != 15 || p.MaxMs != 20 {
		t.Errorf("unexpected path stat: %+v", p)
	}
	if len(snap.SlowestQueries) != 1 || snap.SlowestQueries[0].Path != "event.List" {
		t.Errorf("unexpected query stats: %+v", snap.SlowestQueries)
	}
}

// TestRingOverwrite tests that the ring buffer overwrites oldest entries.
func TestRingOverwrite(t *testing.T) {
	c := NewCollector(2)
	now := time.Now()
	c.Record(Entry{Kind: KindRequest, Path: "GET /a", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /b", DurationMs: 1, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /c", DurationMs: 1, Timestamp: now})

	snap := c.Snapshot(5)
	if snap.TotalRecorded != 3 {
		t.Errorf("TotalRecorded = %d, want 3", snap.TotalRecorded)
	}
	for _, p := range snap.SlowestPaths {
		if p.Path == "GET /a" {
			t.Error("oldest entry should have been overwritten")
		}
	}
}

// TestPercentiles tests p50/p95 on a known distribution.
func TestPercentiles(t *testing.T) {
	c := NewCollector(128)
	now := time.Now()
	for i := 1; i <= 100; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: float64(i), Timestamp: now})
	}
	snap := c.Snapshot(1)
	if snap.RequestP50Ms < 49 || snap.RequestP50Ms > 52 {
		t.Errorf("p50 = %f, want ~50", snap.RequestP50Ms)
	}
	if snap.RequestP95Ms < 94 || snap.RequestP95Ms > 97 {
		t.Errorf("p95 = %f, want ~95", snap.RequestP95Ms)
	}
}

// TestSnapshot_Empty tests snapshotting a fresh collector.
func TestSnapshot_Empty(t *testing.T) {
	c := NewCollector(8)
	snap := c.Snapshot(5)
	if snap.TotalRecorded != 0 || len(snap.SlowestPaths) != 0 || snap.RequestP50Ms != 0 {
		t.Errorf("unexpected non-empty snapshot: %+v", snap)
	}
}
