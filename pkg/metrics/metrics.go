package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry with the service's collectors.
// All methods are safe to call on a nil *Recorder.
type Recorder struct {
	registry *prometheus.Registry

	riskVerdicts  *prometheus.CounterVec
	riskDelay     *prometheus.HistogramVec
	ledgerOps     *prometheus.CounterVec
	geoLookups    *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New creates a Recorder with Go runtime and process collectors attached.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(registry)

	return &Recorder{
		registry: registry,
		riskVerdicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saldo_risk_verdicts_total",
			Help: "Risk verdicts by transaction kind, risk level and outcome",
		}, []string{"kind", "level", "outcome"}),
		riskDelay: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "saldo_risk_delay_seconds",
			Help:    "Risk-imposed processing delay",
			Buckets: []float64{0, 1, 3, 5, 8, 10},
		}, []string{"kind"}),
		ledgerOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saldo_ledger_operations_total",
			Help: "Ledger operations by operation and result code",
		}, []string{"operation", "result"}),
		geoLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saldo_geo_lookups_total",
			Help: "Geolocation lookups by source",
		}, []string{"source"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "saldo_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDurations: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "saldo_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// RiskVerdict records one evaluated verdict.
func (r *Recorder) RiskVerdict(kind, level string, allowed bool, delay time.Duration) {
	if r == nil {
		return
	}
	outcome := "allowed"
	if !allowed {
		outcome = "blocked"
	}
	r.riskVerdicts.WithLabelValues(kind, level, outcome).Inc()
	r.riskDelay.WithLabelValues(kind).Observe(delay.Seconds())
}

// LedgerOperation records a ledger call; result is "ok" or an error code.
func (r *Recorder) LedgerOperation(operation, result string) {
	if r == nil {
		return
	}
	r.ledgerOps.WithLabelValues(operation, result).Inc()
}

// GeoLookup records where a geolocation answer came from.
func (r *Recorder) GeoLookup(source string) {
	if r == nil {
		return
	}
	r.geoLookups.WithLabelValues(source).Inc()
}

// HTTPRequest records a served request.
func (r *Recorder) HTTPRequest(method, route string, status int, took time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDurations.WithLabelValues(method, route).Observe(took.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
