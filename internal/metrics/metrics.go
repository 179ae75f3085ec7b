// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level metrics plus a few domain counters
// worth watching on a portfolio site.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	contactSubmissions prometheus.Counter
	reorderOps         prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		contactSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions accepted",
		}),
		reorderOps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_reorder_operations_total",
			Help: "Collection reorder operations performed",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.contactSubmissions,
		c.reorderOps,
	)

	return c
}

// RecordContactSubmission counts an accepted contact form submission.
func (c *Collector) RecordContactSubmission() {
	c.contactSubmissions.Inc()
}

// RecordReorder counts a reorder operation.
func (c *Collector) RecordReorder() {
	c.reorderOps.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Instrument is the gin middleware recording per-route counts and
// latency. Unmatched routes are bucketed under their raw method only,
// keeping cardinality bounded.
func (c *Collector) Instrument() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		status := strconv.Itoa(ctx.Writer.Status())

		c.httpRequests.WithLabelValues(method, route, status).Inc()
		c.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
