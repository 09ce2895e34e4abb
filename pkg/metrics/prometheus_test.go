package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordProviderCall("history", "error", 0.2)
	r.RecordProviderCall("history", "ok", 0.1)
	r.RecordFallback("history")
	r.RecordLastPrice("AAPL", "live", 185.92)

	if got := testutil.ToFloat64(r.providerRequests.WithLabelValues("history", "error")); got != 1 {
		t.Fatalf("expected 1 failed call, got %v", got)
	}
	if got := testutil.ToFloat64(r.fallbacks.WithLabelValues("history")); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
	if got := testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL", "live")); got != 185.92 {
		t.Fatalf("unexpected last price %v", got)
	}
}

func TestRecordersOnSeparateRegistries(t *testing.T) {
	// Two recorders must not collide when each owns its registry.
	_ = New(prometheus.NewRegistry())
	_ = New(prometheus.NewRegistry())
}
