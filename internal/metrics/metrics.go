package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "artist_dashboard"

var (
	// Registry holds the application collectors exposed on /metrics
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	releaseTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "releases",
			Name:      "status_transitions_total",
			Help:      "Release status changes by outcome.",
		},
		[]string{"from", "to", "outcome"},
	)

	activitiesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "recorded_total",
			Help:      "Activity entries written, by type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	seededRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "seeded_rows_total",
			Help:      "Default analytics rows provisioned, by collection.",
		},
		[]string{"collection"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Asset uploads by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	uploadBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "upload_size_bytes",
			Help:      "Size of accepted uploads.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 8), // 16KiB to ~256MiB
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		releaseTransitions,
		activitiesRecorded,
		seededRows,
		uploads,
		uploadBytes,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request as in flight and returns the func that ends it
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveHTTPRequest records a finished request. route is the matched route
// template so that path parameters do not explode label cardinality.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReleaseTransition records an attempted release status change
func RecordReleaseTransition(from, to string, allowed bool) {
	releaseTransitions.WithLabelValues(from, to, outcome(allowed)).Inc()
}

// RecordActivity records an activity write
func RecordActivity(activityType string, success bool) {
	activitiesRecorded.WithLabelValues(activityType, outcome(success)).Inc()
}

// RecordSeededRows records rows inserted by analytics seeding
func RecordSeededRows(collection string, rows int64) {
	if rows <= 0 {
		return
	}
	seededRows.WithLabelValues(collection).Add(float64(rows))
}

// RecordUpload records an asset upload attempt
func RecordUpload(kind string, size int64, success bool) {
	uploads.WithLabelValues(kind, outcome(success)).Inc()
	if success {
		uploadBytes.WithLabelValues(kind).Observe(float64(size))
	}
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
