package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edelwud/pillar-validator/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger domain.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", domain.Field{Key: "error", Value: err.Error()})
	}
}

// writeError renders err as JSON. Errors that are not *domain.AppError
// are reported as internal errors.
func writeError(w http.ResponseWriter, logger domain.Logger, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		appErr = domain.NewInternalError("internal server error", err)
	}

	writeJSON(w, logger, appErr.HTTPStatus, errorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
	})
}
