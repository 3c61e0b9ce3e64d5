package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/infrastructure/logger"
)

// Instrument records request metrics and logs every request handled by next.
func Instrument(next http.Handler, metrics domain.MetricsService, log domain.Logger) http.Handler {
	log = log.With(logger.Component("http"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		status := strconv.Itoa(wrapper.statusCode)

		metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, status, duration)

		fields := []domain.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status_code", wrapper.statusCode),
			logger.Duration("duration", duration),
			logger.String("remote_addr", r.RemoteAddr),
		}

		if wrapper.statusCode >= http.StatusBadRequest {
			log.Warn("Request completed with error", fields...)
		} else {
			log.Debug("Request completed", fields...)
		}
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
