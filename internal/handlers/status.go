package handlers

import (
	"net/http"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/services/monitor"
)

// StatsProvider exposes background validation statistics.
type StatsProvider interface {
	Stats() monitor.Stats
}

// StatusResponse is the body returned by GET /status.
type StatusResponse struct {
	monitor.Stats

	LastResult *ValidateResponse `json:"last_result,omitempty"`
}

// StatusHandler reports the outcome of periodic validation.
type StatusHandler struct {
	provider StatsProvider
	logger   domain.Logger
}

// NewStatusHandler creates a status handler.
func NewStatusHandler(provider StatsProvider, logger domain.Logger) *StatusHandler {
	return &StatusHandler{
		provider: provider,
		logger:   logger.With(domain.Field{Key: "component", Value: "status_handler"}),
	}
}

// ServeHTTP implements http.Handler interface.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, h.logger, domain.ErrMethodNotAllowed)
		return
	}

	stats := h.provider.Stats()
	resp := StatusResponse{Stats: stats}
	if stats.LastReport != nil {
		last := newValidateResponse(stats.LastReport)
		resp.LastResult = &last
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
