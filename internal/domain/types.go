// Package domain contains core business types and interfaces
package domain

import (
	"context"
	"net/http"
	"time"
)

// Node describes a cluster host as reported by the orchestrator.
type Node struct {
	Hostname string   `json:"hostname"         validate:"required,hostname_rfc1123"`
	Addr     string   `json:"addr,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// Hostnames returns the hostnames of the given nodes in order.
func Hostnames(nodes []Node) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Hostname)
	}

	return names
}

// Pillar provides read-only access to a hierarchical configuration tree.
// Keys are segments joined by PillarKeySeparator.
type Pillar interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (any, bool)
	// Exists reports whether key resolves to a value.
	Exists(key string) bool
}

// PillarSource loads a pillar snapshot from an external store.
type PillarSource interface {
	// Load fetches the current pillar. The returned snapshot does not
	// change when the underlying store is modified afterwards.
	Load(ctx context.Context) (Pillar, error)
	// Name identifies the source for logs and metrics.
	Name() string
}

// PillarSourceType defines the kind of pillar backend.
type PillarSourceType string

const (
	// PillarSourceTypeFile reads the pillar from a local file.
	PillarSourceTypeFile PillarSourceType = "file"
	// PillarSourceTypeRedis reads the pillar document from a Redis key.
	PillarSourceTypeRedis PillarSourceType = "redis"
	// PillarSourceTypeKubernetes reads the pillar document from a ConfigMap.
	PillarSourceTypeKubernetes PillarSourceType = "kubernetes"
)

// IsValid checks if the source type is supported.
func (t PillarSourceType) IsValid() bool {
	switch t {
	case PillarSourceTypeFile, PillarSourceTypeRedis, PillarSourceTypeKubernetes:
		return true
	default:
		return false
	}
}

// ValidationReport is the outcome of a single validation run.
type ValidationReport struct {
	Valid     bool             `json:"valid"`
	Issue     *ValidationError `json:"-"`
	Source    string           `json:"source"`
	Deployed  int              `json:"deployed"`
	CheckedAt time.Time        `json:"checked_at"`
	Duration  time.Duration    `json:"-"`
}

// ValidationService validates the pillar of a deployment.
type ValidationService interface {
	// Validate loads the pillar and checks it. The error is non-nil only
	// when the pillar could not be loaded; rule violations are reported
	// in the returned report.
	Validate(ctx context.Context, deployed []Node) (*ValidationReport, error)
}

// MetricsService handles metrics collection.
type MetricsService interface {
	RecordValidation(
		ctx context.Context,
		source string,
		kind ValidationKind,
		valid bool,
		duration time.Duration,
	)
	RecordSourceLoad(
		ctx context.Context,
		source string,
		success bool,
		duration time.Duration,
	)
	RecordHTTPRequest(
		ctx context.Context,
		method, path, status string,
		duration time.Duration,
	)

	Handler() http.Handler
}

// Logger provides structured logging interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value any
}

// LogFormat represents the output format for logs.
type LogFormat string

const (
	// LogFormatJSON outputs logs in JSON format (default for production).
	LogFormatJSON LogFormat = "json"
	// LogFormatText outputs logs in logrus text format.
	LogFormatText LogFormat = "text"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// HealthStatus represents the health status of a component.
type HealthStatus string

const (
	// HealthStatusHealthy indicates the component is functioning normally.
	HealthStatusHealthy HealthStatus = "healthy"
	// HealthStatusDegraded indicates the component cannot serve requests.
	HealthStatusDegraded HealthStatus = "degraded"
)
