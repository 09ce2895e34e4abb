package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerRequests *prometheus.CounterVec
	fallbacks        *prometheus.CounterVec
	lastPrice        *prometheus.GaugeVec
	latency          *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		providerRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_provider_requests_total",
				Help: "Market-data provider calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		fallbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_fallbacks_total",
				Help: "Responses served from synthetic data",
			},
			[]string{"operation"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockpulse_last_price",
				Help: "Last price served for a symbol",
			},
			[]string{"symbol", "source"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpulse_provider_duration_seconds",
				Help:    "Duration of market-data provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordProviderCall records one provider call and its latency.
func (r *Recorder) RecordProviderCall(op, outcome string, seconds float64) {
	r.providerRequests.WithLabelValues(op, outcome).Inc()
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordFallback records a response served from the fallback generator.
func (r *Recorder) RecordFallback(op string) {
	r.fallbacks.WithLabelValues(op).Inc()
}

// RecordLastPrice records the last price served for a symbol.
func (r *Recorder) RecordLastPrice(symbol, source string, price float64) {
	r.lastPrice.WithLabelValues(symbol, source).Set(price)
}
