package services

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors
type Metrics struct {
	PageViews       *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CacheResults    *prometheus.CounterVec
	TaskRuns        *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on reg. Pass a fresh registry in tests
// to avoid duplicate registration.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Tracked page views by page",
		}, []string{"page"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_cache_total",
			Help: "Rendered page cache lookups by result",
		}, []string{"result"}),
		TaskRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_task_runs_total",
			Help: "Scheduled task executions by task and status",
		}, []string{"task", "status"}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
