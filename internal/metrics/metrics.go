// Package metrics exposes Prometheus instrumentation for the breed service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "breeds_requests_total",
			Help: "Engine operations served, by operation and outcome",
		},
		[]string{"operation", "outcome"}, // outcome: found, suggestion, not_found, ok, empty, bad_request
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "breeds_request_duration_seconds",
			Help:    "Engine operation latency in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"operation"},
	)

	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "breeds_catalog_records",
			Help: "Records in the currently served catalog",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "breeds_catalog_reloads_total",
			Help: "Catalog reload attempts by result",
		},
		[]string{"result"}, // ok, error
	)
)

// Observe records one engine operation.
func Observe(operation, outcome string, start time.Time) {
	Requests.WithLabelValues(operation, outcome).Inc()
	RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
