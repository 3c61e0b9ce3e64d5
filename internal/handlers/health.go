package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// SourceChecker reports whether the pillar source can be read.
type SourceChecker interface {
	Check(ctx context.Context) error
	SourceName() string
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	logger       domain.Logger
	version      string
	checker      SourceChecker
	checkTimeout time.Duration
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(
	logger domain.Logger,
	version string,
	checker SourceChecker,
	checkTimeout time.Duration,
) *HealthHandler {
	return &HealthHandler{
		logger:       logger.With(domain.Field{Key: "component", Value: "health"}),
		version:      version,
		checker:      checker,
		checkTimeout: checkTimeout,
	}
}

// ServeHTTP routes /ready to the readiness probe and everything else to
// the liveness probe.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/ready" {
		h.Readiness(w, r)
		return
	}

	h.Health(w, r)
}

// Health responds to health check requests.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response := map[string]any{
		"status":    domain.HealthStatusHealthy,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	}

	writeJSON(w, h.logger, http.StatusOK, response)
}

// Readiness loads the pillar once to confirm the source is reachable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	status, statusCode := h.checkSource(r.Context(), checks)

	response := map[string]any{
		"status": status,
		"checks": checks,
	}

	writeJSON(w, h.logger, statusCode, response)
}

func (h *HealthHandler) checkSource(ctx context.Context, checks map[string]string) (string, int) {
	if h.checker == nil {
		checks["source"] = "pillar source not configured"
		return string(domain.HealthStatusDegraded), http.StatusServiceUnavailable
	}

	if h.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.checkTimeout)
		defer cancel()
	}

	if err := h.checker.Check(ctx); err != nil {
		h.logger.Warn("Pillar source not ready",
			domain.Field{Key: "source", Value: h.checker.SourceName()},
			domain.Field{Key: "error", Value: err.Error()})
		checks["source"] = err.Error()
		return string(domain.HealthStatusDegraded), http.StatusServiceUnavailable
	}

	checks["source"] = h.checker.SourceName() + " reachable"
	return "ready", http.StatusOK
}
