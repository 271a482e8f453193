package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "modelhub"

var (
	// RequestsTotal counts HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	// RequestDuration observes HTTP request latency in seconds.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// ModelFetchesTotal counts catalog lookups by outcome status.
	ModelFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_fetches_total",
		Help:      "Catalog model lookups by result status.",
	}, []string{"status"})

	// ExtractorFailuresTotal counts metadata extractors that fell back to defaults.
	ExtractorFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractor_failures_total",
		Help:      "Metadata extractor failures absorbed during assembly.",
	}, []string{"extractor"})

	// ScrapeSyncTotal counts bulk sync records by source and outcome.
	ScrapeSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_sync_total",
		Help:      "Bulk scrape records processed by source and outcome.",
	}, []string{"source", "status"})
)
