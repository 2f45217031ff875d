// Package metrics exposes Prometheus collectors for HTTP traffic and GraphQL
// operations, registered on a private registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/graphql-demo-go/internal/dependencies/clock"
	"github.com/mcoot/graphql-demo-go/internal/middleware"
)

const namespace = "gqldemo"

// Operation outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors served at /metrics
type Metrics struct {
	registry   *prometheus.Registry
	clock      clock.Clock
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

// New creates a registry with HTTP, GraphQL, Go runtime and process collectors
func New(clk clock.Clock) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		clock:    clk,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_operations_total",
			Help:      "Executed GraphQL operations by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.operations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry (for tests and extra collectors)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOperation counts one executed GraphQL operation
func (m *Metrics) ObserveOperation(ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latency per mux route template
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := m.clock.Now()
			wrapped := middleware.WrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			route := routeTemplate(r)
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.Status())).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(m.clock.Since(start).Seconds())
		})
	}
}

// routeTemplate keeps label cardinality bounded by using the route, not the raw path
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tpl
}
