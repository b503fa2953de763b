package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	wordsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "words_ingested_total",
			Help: "Total number of words submitted through the collection workflow",
		},
		[]string{"outcome"}, // created / updated
	)

	dictionaryLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dictionary_lookups_total",
			Help: "Total number of dictionary lookups by result source",
		},
		[]string{"source"},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Total number of PDF export attempts",
		},
		[]string{"status"},
	)

	sessionsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_completed_total",
			Help: "Total number of review and game sessions completed",
		},
		[]string{"kind"},
	)
)

// MetricsMiddleware collects Prometheus metrics for every HTTP request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		c.Next()

		httpRequestsInFlight.Dec()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordIngestedWords counts batch-ingest outcomes.
func RecordIngestedWords(created, updated int) {
	wordsIngestedTotal.WithLabelValues("created").Add(float64(created))
	wordsIngestedTotal.WithLabelValues("updated").Add(float64(updated))
}

// RecordDictionaryLookup counts a lookup by its result source.
func RecordDictionaryLookup(source string) {
	dictionaryLookupsTotal.WithLabelValues(source).Inc()
}

// RecordExport counts an export attempt.
func RecordExport(success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	exportsTotal.WithLabelValues(status).Inc()
}

// RecordSessionCompleted counts a naturally completed session.
func RecordSessionCompleted(kind string) {
	sessionsCompletedTotal.WithLabelValues(kind).Inc()
}
