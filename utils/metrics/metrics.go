// Package metrics exposes prometheus collectors for the HTTP surface,
// the aggregation caches, and outbound workspace API calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_http_requests_total",
		Help: "HTTP requests processed, by method, path and status class.",
	}, []string{"method", "path", "status"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_cache_hits_total",
		Help: "Aggregation cache hits, by cache name.",
	}, []string{"cache"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_cache_misses_total",
		Help: "Aggregation cache misses, by cache name.",
	}, []string{"cache"})

	RemoteRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quill_remote_request_duration_seconds",
		Help:    "Duration of workspace API calls, by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	RemoteErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_remote_errors_total",
		Help: "Failed workspace API calls, by operation.",
	}, []string{"operation"})
)

// ObserveRemoteCall records the duration of one workspace API call and
// counts it as an error when err is non-nil.
func ObserveRemoteCall(operation string, start time.Time, err error) {
	RemoteRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		RemoteErrorsTotal.WithLabelValues(operation).Inc()
	}
}
