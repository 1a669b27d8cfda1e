// Package metrics provides Prometheus instrumentation for the dashboard API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})

	// WatchlistToggles counts toggle operations, partitioned by the resulting action.
	WatchlistToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_watchlist_toggles_total",
		Help: "Watchlist toggle operations by action (added/removed)",
	}, []string{"action"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns a gin middleware that records request metrics.
// The path label uses the route pattern (e.g. /api/stocks/:id) to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ToggleRecorder records watchlist toggle outcomes into WatchlistToggles.
type ToggleRecorder struct{}

// RecordToggle increments the counter for the action taken.
func (ToggleRecorder) RecordToggle(added bool) {
	action := "removed"
	if added {
		action = "added"
	}
	WatchlistToggles.WithLabelValues(action).Inc()
}
