// Package metrics provides Prometheus metrics for the stageboard service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ImportRows counts rows handled by the import pipeline.
	// Labels: result (committed, failed, skipped)
	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stageboard",
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "Total number of import rows by result",
		},
		[]string{"result"},
	)

	// ImportRuns counts import runs.
	// Labels: result (success, error)
	ImportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stageboard",
			Subsystem: "import",
			Name:      "runs_total",
			Help:      "Total number of import runs by result",
		},
		[]string{"result"},
	)

	// HTTPRequests counts HTTP requests.
	// Labels: method, route, status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stageboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration tracks HTTP request latency.
	// Labels: method, route
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stageboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Result labels.
const (
	ResultCommitted = "committed"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
	ResultSuccess   = "success"
	ResultError     = "error"
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
