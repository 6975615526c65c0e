package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds the request-level metrics exposed on /metrics.
type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP metric vectors on reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh
// registry so repeated construction does not collide.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests handled, by method, route and status code",
			},
			[]string{"method", "path", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds, by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordRequest counts one handled request.
func (m *HTTPMetrics) RecordRequest(method, path, status string) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordDuration records how long a request took.
func (m *HTTPMetrics) RecordDuration(method, path string, durationSeconds float64) {
	m.RequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// Middleware instruments every request passing through the engine.
// The path label is the route template, so /indicators/Japan and
// /indicators/Sweden share one series; unmatched requests are folded
// into a single label to keep cardinality bounded.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.RecordRequest(method, path, strconv.Itoa(c.Writer.Status()))
		m.RecordDuration(method, path, time.Since(start).Seconds())
	}
}
