// Package metrics defines Prometheus metrics for opty-search.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "opty"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics, set by the health probe middleware.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last /healthz probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last /readyz probe succeeded.",
	})
)

// Search pipeline metrics.
var (
	SearchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Total number of search pipeline runs by outcome.",
	}, []string{"outcome"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "End-to-end duration of search pipeline runs in seconds.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	})

	SearchProducts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_products",
		Help:      "Number of products returned per successful search.",
		Buckets:   prometheus.LinearBuckets(0, 10, 7), // 0, 10, ..., 60
	})
)

// Normalization metrics.
var (
	NormalizationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "normalization_duration_seconds",
		Help:      "Duration of LLM normalization calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NormalizationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "normalization_failures_total",
		Help:      "Total number of failed query normalizations.",
	})

	NormalizationCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "normalization_cache_total",
		Help:      "Normalization cache lookups by result (hit, miss).",
	}, []string{"result"})
)

// Catalog metrics.
var (
	CatalogFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_duration_seconds",
		Help:      "Duration of catalog page fetches in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CatalogFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_errors_total",
		Help:      "Total number of failed catalog fetches by kind.",
	}, []string{"kind"})

	CatalogBodyTruncatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_body_truncated_total",
		Help:      "Total number of results pages cut off at the body size limit.",
	})

	ExtractionProductsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_products_total",
		Help:      "Total number of products extracted from catalog pages.",
	})

	ExtractionSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_skipped_total",
		Help:      "Total number of listing containers skipped by reason (incomplete, failed).",
	}, []string{"reason"})
)

// Layout probe metrics.
var (
	CatalogLayoutOK = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_layout_ok",
		Help:      "1 when the last probe extracted at least one product.",
	})

	CatalogProbeProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_probe_products",
		Help:      "Products extracted by the last layout probe.",
	})

	ProbeRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "probe_runs_total",
		Help:      "Total number of layout probe runs by outcome.",
	}, []string{"outcome"})
)

// Notification metrics.
var (
	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of layout notification deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of failed layout notification deliveries.",
	})
)
