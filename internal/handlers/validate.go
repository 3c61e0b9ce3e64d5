package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/infrastructure/logger"
)

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	// Deployed lists hosts the orchestrator already manages.
	Deployed []domain.Node `json:"deployed" validate:"omitempty,dive"`
}

// IssueResponse describes the violated rule.
type IssueResponse struct {
	Kind     domain.ValidationKind     `json:"kind"`
	Severity domain.ValidationSeverity `json:"severity"`
	Key      string                    `json:"key,omitempty"`
	Hostname string                    `json:"hostname,omitempty"`
	Message  string                    `json:"message"`
}

// ValidateResponse is the body returned by POST /validate.
type ValidateResponse struct {
	Valid      bool           `json:"valid"`
	Message    *string        `json:"message"`
	Issue      *IssueResponse `json:"issue,omitempty"`
	Source     string         `json:"source"`
	Deployed   int            `json:"deployed"`
	CheckedAt  time.Time      `json:"checked_at"`
	DurationMS int64          `json:"duration_ms"`
}

// ValidateHandler runs pillar validation on request.
type ValidateHandler struct {
	service      domain.ValidationService
	logger       domain.Logger
	validate     *validator.Validate
	maxBodyBytes int64
}

// NewValidateHandler creates a validation handler.
func NewValidateHandler(
	service domain.ValidationService,
	logger domain.Logger,
	maxBodyBytes int64,
) *ValidateHandler {
	return &ValidateHandler{
		service:      service,
		logger:       logger.With(domain.Field{Key: "component", Value: "validate_handler"}),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
	}
}

// ServeHTTP implements http.Handler interface.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, h.logger, domain.ErrMethodNotAllowed)
		return
	}

	req, err := h.decodeRequest(w, r)
	if err != nil {
		h.logger.Debug("Rejected validation request", logger.Error(err))
		writeError(w, h.logger, err)
		return
	}

	report, err := h.service.Validate(r.Context(), req.Deployed)
	if err != nil {
		h.logger.Error("Validation failed", logger.Error(err))
		writeError(w, h.logger, domain.NewSourceUnavailableError("pillar source unavailable", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newValidateResponse(report))
}

func (h *ValidateHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*ValidateRequest, error) {
	var req ValidateRequest

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewAppError(domain.ErrCodeBadRequest,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
				http.StatusRequestEntityTooLarge, err)
		}
		return nil, domain.NewBadRequestError("invalid JSON body", err)
	}

	if err := h.validate.Struct(&req); err != nil {
		return nil, domain.NewBadRequestError(describeValidationError(err), err)
	}

	return &req, nil
}

func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	fe := fieldErrs[0]
	return fmt.Sprintf("invalid %s: failed '%s' check", fe.Namespace(), fe.Tag())
}

func newValidateResponse(report *domain.ValidationReport) ValidateResponse {
	resp := ValidateResponse{
		Valid:      report.Valid,
		Source:     report.Source,
		Deployed:   report.Deployed,
		CheckedAt:  report.CheckedAt.UTC(),
		DurationMS: report.Duration.Milliseconds(),
	}

	if report.Issue != nil {
		message := report.Issue.Error()
		resp.Message = &message
		resp.Issue = &IssueResponse{
			Kind:     report.Issue.Kind,
			Severity: report.Issue.Severity(),
			Key:      report.Issue.Key,
			Hostname: report.Issue.Hostname,
			Message:  message,
		}
	}

	return resp
}
