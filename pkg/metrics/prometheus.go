// Package metrics provides Prometheus metrics for the paddock insight service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the paddock service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics - the two analysis pipelines.
	similarityRequests prometheus.Counter
	similarityEmpty    prometheus.Counter
	similarityLatency  prometheus.Histogram
	similarityMatches  prometheus.Histogram
	storyRequests      prometheus.Counter
	storyNotFound      prometheus.Counter
	storyLatency       prometheus.Histogram

	// Store health metrics.
	storeReloads        prometheus.Counter
	storeReloadDuration prometheus.Histogram
	storeResultRows     prometheus.Gauge
	knowledgeProfiles   prometheus.Gauge

	// HTTP performance metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System performance metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "paddock",
		subsystem:        "insight",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Register on the configured registry (custom by default).
	auto := promauto.With(m.registry)

	m.similarityRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_requests_total",
		Help:      "Total number of similarity ranking requests",
	})

	m.similarityEmpty = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_empty_total",
		Help:      "Total number of similarity requests where the target surname was unknown",
	})

	m.similarityLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_latency_milliseconds",
		Help:      "Histogram of similarity ranking latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.similarityMatches = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_matches",
		Help:      "Histogram of match counts returned per similarity request",
		Buckets:   []float64{0, 1, 2, 3},
	})

	m.storyRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "story_requests_total",
		Help:      "Total number of race story reconstruction requests",
	})

	m.storyNotFound = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "story_not_found_total",
		Help:      "Total number of story requests where the driver did not start the race",
	})

	m.storyLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "story_latency_milliseconds",
		Help:      "Histogram of story reconstruction latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeReloads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_reloads_total",
		Help:      "Total number of relational store (re)loads from disk",
	})

	m.storeReloadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_reload_duration_milliseconds",
		Help:      "Histogram of relational store load durations in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeResultRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_result_rows",
		Help:      "Number of result rows in the loaded relational store",
	})

	m.knowledgeProfiles = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "knowledge_profiles",
		Help:      "Number of driver profiles in the statistical knowledge store",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of average GC pause times in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers operating on the global manager.

// RecordSimilarityRequest counts a similarity ranking request and its outcome.
func RecordSimilarityRequest(matches int, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.similarityRequests.Inc()
	globalManager.similarityMatches.Observe(float64(matches))
	globalManager.similarityLatency.Observe(durationMs)
	if matches == 0 {
		globalManager.similarityEmpty.Inc()
	}
}

// RecordStoryRequest counts a story reconstruction request.
func RecordStoryRequest(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.storyRequests.Inc()
	globalManager.storyLatency.Observe(durationMs)
}

// RecordStoryNotFound counts a story request for a driver absent from the race.
func RecordStoryNotFound() {
	if !globalManager.enabled {
		return
	}
	globalManager.storyNotFound.Inc()
}

// RecordStoreReload counts a relational store (re)load and its duration.
func RecordStoreReload(durationMs float64, resultRows int) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeReloads.Inc()
	globalManager.storeReloadDuration.Observe(durationMs)
	globalManager.storeResultRows.Set(float64(resultRows))
}

// UpdateKnowledgeProfiles sets the current knowledge store population size.
func UpdateKnowledgeProfiles(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.knowledgeProfiles.Set(float64(n))
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError counts an HTTP error response.
func RecordHTTPError(endpoint, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpErrors.WithLabelValues(endpoint, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the current heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an average GC pause observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}
