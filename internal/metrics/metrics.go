package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/tubespark/server/internal/plans"
)

// holds the server's prometheus collectors. It satisfies quota.Observer and
// generation.Observer.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	QuotaConsumeTotal *prometheus.CounterVec

	GenerationTotal    *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
}

// creates and registers all collectors on registry
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubespark_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubespark_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		QuotaConsumeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubespark_quota_consume_total",
				Help: "Quota consume attempts by resource kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		GenerationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubespark_generation_total",
				Help: "Idea generation requests by outcome",
			},
			[]string{"outcome"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubespark_generation_duration_seconds",
				Help:    "Idea generation duration in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuotaConsumeTotal,
		m.GenerationTotal,
		m.GenerationDuration,
	)

	return m
}

// records a ledger consume outcome
func (m *Metrics) ObserveConsume(kind plans.ResourceKind, outcome string) {
	m.QuotaConsumeTotal.WithLabelValues(string(kind), outcome).Inc()
}

// records a generation outcome and its duration
func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration) {
	m.GenerationTotal.WithLabelValues(outcome).Inc()
	m.GenerationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// records request count and latency per matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
