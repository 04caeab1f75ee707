// Package prometheus exposes the platform's operational metrics.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector the platform registers.  One instance
// is created at startup and shared by the HTTP layer and the document
// service.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DocumentsAnalyzed *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	ClausesPerDoc     prometheus.Histogram

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New builds and registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DocumentsAnalyzed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "documents_analyzed_total",
			Help:      "Completed document analyses by overall risk level.",
		}, []string{"overall_risk"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "End-to-end analysis latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ClausesPerDoc: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "clauses_per_document",
			Help:      "Clause count distribution across analysed documents.",
			Buckets:   []float64{1, 2, 5, 10, 15, 20},
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Analysis cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Analysis cache misses.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DocumentsAnalyzed,
		m.AnalysisDuration,
		m.ClausesPerDoc,
		m.CacheHits,
		m.CacheMisses,
	)
	return m
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAnalysis records one completed document analysis.
func (m *Metrics) ObserveAnalysis(overallRisk string, clauseCount int, elapsed time.Duration) {
	m.DocumentsAnalyzed.WithLabelValues(overallRisk).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
	m.ClausesPerDoc.Observe(float64(clauseCount))
}
