package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GatewayMetrics collects HTTP server metrics plus submission workflow
// observations. It implements ports.MetricsRecorder.
type GatewayMetrics struct {
	registry *prometheus.Registry
	service  string

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	submissionsTotal   *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	enrichmentProducts *prometheus.HistogramVec
	staleDropsTotal    *prometheus.CounterVec
	highRiskTotal      *prometheus.CounterVec
}

func NewGatewayMetrics(service string) *GatewayMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "credit_gateway",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "credit_gateway",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "credit_gateway",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	submissionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "credit_gateway",
			Subsystem: "workflow",
			Name:      "submissions_total",
			Help:      "Total submission cycles by result (approved, rejected, flagged, transport_error).",
		},
		[]string{"service", "result"},
	)
	submissionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "credit_gateway",
			Subsystem: "workflow",
			Name:      "scoring_duration_seconds",
			Help:      "Duration of the mandatory scoring call per cycle.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "result"},
	)
	enrichmentProducts := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "credit_gateway",
			Subsystem: "workflow",
			Name:      "enrichment_products",
			Help:      "Distribution of products merged per enrichment call.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"service"},
	)
	staleDropsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "credit_gateway",
			Subsystem: "workflow",
			Name:      "stale_enrichment_drops_total",
			Help:      "Enrichment results discarded because their cycle was superseded.",
		},
		[]string{"service"},
	)
	highRiskTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "credit_gateway",
			Subsystem: "workflow",
			Name:      "high_risk_total",
			Help:      "Committed outcomes whose anomaly signal exceeded the high-risk threshold.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		submissionsTotal,
		submissionDuration,
		enrichmentProducts,
		staleDropsTotal,
		highRiskTotal,
	)

	return &GatewayMetrics{
		registry:           registry,
		service:            service,
		requestTotal:       requestTotal,
		requestDuration:    requestDuration,
		requestInFlight:    requestInFlight,
		submissionsTotal:   submissionsTotal,
		submissionDuration: submissionDuration,
		enrichmentProducts: enrichmentProducts,
		staleDropsTotal:    staleDropsTotal,
		highRiskTotal:      highRiskTotal,
	}
}

func (m *GatewayMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *GatewayMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			m.service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(m.service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *GatewayMetrics) RecordSubmission(result string, duration time.Duration) {
	if result == "" {
		result = "unknown"
	}
	m.submissionsTotal.WithLabelValues(m.service, result).Inc()
	m.submissionDuration.WithLabelValues(m.service, result).Observe(duration.Seconds())
}

func (m *GatewayMetrics) RecordEnrichment(productCount int) {
	m.enrichmentProducts.WithLabelValues(m.service).Observe(float64(productCount))
}

func (m *GatewayMetrics) RecordStaleEnrichmentDrop() {
	m.staleDropsTotal.WithLabelValues(m.service).Inc()
}

func (m *GatewayMetrics) RecordHighRisk() {
	m.highRiskTotal.WithLabelValues(m.service).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
