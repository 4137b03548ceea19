package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "job_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "job_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "job_tracker",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being served.",
		},
	)
)

// unmatchedPath labels requests that matched no route, keeping label cardinality bounded.
const unmatchedPath = "unmatched"

// MetricsMiddleware records Prometheus request metrics labelled by the chi route pattern.
func MetricsMiddleware(registerer prometheus.Registerer) func(http.Handler) http.Handler {
	registerMetricsOnce.Do(func() {
		registerer.MustRegister(requestDuration, requestTotal, requestsInFlight)
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			path := unmatchedPath
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			labels := prometheus.Labels{
				"method": r.Method,
				"path":   path,
				"status": strconv.Itoa(rw.statusCode),
			}
			requestDuration.With(labels).Observe(time.Since(start).Seconds())
			requestTotal.With(labels).Inc()
		})
	}
}
