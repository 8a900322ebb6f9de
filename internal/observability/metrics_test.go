package observability

import (
	"testing"
	"time"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/login", "POST", 200, 30*time.Millisecond)
	m.RecordError("/login", "POST", "INVALID_CREDENTIALS")

	snap := m.Snapshot()
	if got := snap.Requests["/login|POST|200"]; got != 2 {
		t.Errorf("requests = %d, want 2", got)
	}
	if got := snap.AvgLatencyMillis["/login|POST|200"]; got != 20 {
		t.Errorf("avg latency = %d, want 20", got)
	}
	if got := snap.Errors["/login|POST|INVALID_CREDENTIALS"]; got != 1 {
		t.Errorf("errors = %d, want 1", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if len(m.Snapshot().Requests) != 0 {
		t.Error("nil metrics produced counters")
	}
}
