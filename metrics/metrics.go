package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshDuration tracks the latency of catalog refreshes against the offers API
	RefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "offers_refresh_duration_seconds",
			Help: "Duration of offer catalog refreshes in seconds",
			Buckets: []float64{
				0.01, // 10ms
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
			},
		},
		[]string{"status"}, // success or failure
	)

	// SnapshotOffers reports the size of the current offer snapshot
	SnapshotOffers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "offers_snapshot_total",
			Help: "Number of offers in the current catalog snapshot",
		},
	)

	// SkippedOffers counts individual records dropped during normalization
	SkippedOffers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "offers_skipped_records_total",
			Help: "Offer records dropped because they could not be normalized",
		},
	)
)

// RecordRefresh records the outcome and duration of one catalog refresh
func RecordRefresh(status string, seconds float64) {
	RefreshDuration.WithLabelValues(status).Observe(seconds)
}
