package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/legible-dev/legible/internal/domain/entity"
)

// Metrics bundles the Prometheus instruments exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	auditsTotal    prometheus.Counter
	findingsTotal  *prometheus.CounterVec
	activeRequests prometheus.Gauge
	auditDuration  prometheus.Histogram
}

// NewMetrics creates a Metrics backed by its own registry, so multiple
// instances never trip duplicate registration.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		auditsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "legible_audits_total",
			Help: "Total number of document audits served.",
		}),
		findingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "legible_findings_total",
			Help: "Total findings reported, by verdict.",
		}, []string{"verdict"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "legible_active_requests",
			Help: "Number of requests currently being handled.",
		}),
		auditDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "legible_audit_duration_seconds",
			Help:    "Time spent auditing one document.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.auditsTotal,
		m.findingsTotal,
		m.activeRequests,
		m.auditDuration,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveAudit records one finished audit.
func (m *Metrics) ObserveAudit(report *entity.Report) {
	m.auditsTotal.Inc()

	passed, failed, indeterminate := report.Counts()
	m.findingsTotal.WithLabelValues(string(entity.VerdictPass)).Add(float64(passed))
	m.findingsTotal.WithLabelValues(string(entity.VerdictFail)).Add(float64(failed))
	m.findingsTotal.WithLabelValues(string(entity.VerdictIndeterminate)).Add(float64(indeterminate))
	m.auditDuration.Observe(report.Duration.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
