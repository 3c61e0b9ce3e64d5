package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// metricsSet holds all Prometheus metrics to avoid global variables.
type metricsSet struct {
	validationsTotal      *prometheus.CounterVec
	validationDuration    *prometheus.HistogramVec
	lastValidationSuccess *prometheus.GaugeVec
	sourceLoadsTotal      *prometheus.CounterVec
	sourceLoadDuration    *prometheus.HistogramVec
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
}

// newMetricsSet creates a new set of metrics with proper initialization.
func newMetricsSet() *metricsSet {
	return &metricsSet{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pillar_validator_validations_total",
				Help: "Total number of pillar validations by result and violation kind",
			},
			[]string{"source", "result", "kind"},
		),
		validationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pillar_validator_validation_duration_seconds",
				Help:    "Time spent checking a loaded pillar",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"source"},
		),
		lastValidationSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pillar_validator_last_validation_success",
				Help: "Whether the last validation of a source passed (1) or failed (0)",
			},
			[]string{"source"},
		),
		sourceLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pillar_validator_source_loads_total",
				Help: "Total number of pillar source loads",
			},
			[]string{"source", "success"},
		),
		sourceLoadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pillar_validator_source_load_duration_seconds",
				Help:    "Time spent loading the pillar from its source",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pillar_validator_http_requests_total",
				Help: "Total number of HTTP requests processed by pillar-validator",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pillar_validator_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
	}
}

// Service implements domain.MetricsService.
type Service struct {
	logger   domain.Logger
	registry *prometheus.Registry
	metrics  *metricsSet
}

// NewService creates a new metrics service.
func NewService(logger domain.Logger) *Service {
	registry := prometheus.NewRegistry()
	metrics := newMetricsSet()

	registry.MustRegister(
		metrics.validationsTotal,
		metrics.validationDuration,
		metrics.lastValidationSuccess,
		metrics.sourceLoadsTotal,
		metrics.sourceLoadDuration,
		metrics.httpRequestsTotal,
		metrics.httpRequestDuration,
	)

	// Also register Go runtime metrics.
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Service{
		logger:   logger,
		registry: registry,
		metrics:  metrics,
	}
}

// Handler returns HTTP handler for metrics endpoint.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry exposes the underlying registry for tests and gatherers.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// RecordValidation records the outcome of one validation run.
func (s *Service) RecordValidation(
	_ context.Context,
	source string,
	kind domain.ValidationKind,
	valid bool,
	duration time.Duration,
) {
	result := "invalid"
	success := 0.0
	if valid {
		result = "valid"
		success = 1
	}

	s.metrics.validationsTotal.WithLabelValues(source, result, string(kind)).Inc()
	s.metrics.validationDuration.WithLabelValues(source).Observe(duration.Seconds())
	s.metrics.lastValidationSuccess.WithLabelValues(source).Set(success)

	s.logger.Debug("Validation metrics recorded",
		domain.Field{Key: "source", Value: source},
		domain.Field{Key: "result", Value: result},
		domain.Field{Key: "kind", Value: string(kind)},
		domain.Field{Key: "duration_ms", Value: duration.Milliseconds()},
	)
}

// RecordSourceLoad records a pillar source load attempt.
func (s *Service) RecordSourceLoad(
	_ context.Context,
	source string,
	success bool,
	duration time.Duration,
) {
	s.metrics.sourceLoadsTotal.WithLabelValues(source, strconv.FormatBool(success)).Inc()
	s.metrics.sourceLoadDuration.WithLabelValues(source).Observe(duration.Seconds())

	s.logger.Debug("Source load metrics recorded",
		domain.Field{Key: "source", Value: source},
		domain.Field{Key: "success", Value: success},
		domain.Field{Key: "duration_ms", Value: duration.Milliseconds()},
	)
}

// RecordHTTPRequest records metrics for incoming requests.
func (s *Service) RecordHTTPRequest(
	_ context.Context,
	method, path, status string,
	duration time.Duration,
) {
	s.metrics.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	s.metrics.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
