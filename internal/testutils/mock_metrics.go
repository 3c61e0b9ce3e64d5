package testutils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// ValidationCall is a recorded RecordValidation invocation.
type ValidationCall struct {
	Source string
	Kind   domain.ValidationKind
	Valid  bool
}

// SourceLoadCall is a recorded RecordSourceLoad invocation.
type SourceLoadCall struct {
	Source  string
	Success bool
}

// MockMetricsService implements domain.MetricsService for testing.
type MockMetricsService struct {
	mu          sync.Mutex
	validations []ValidationCall
	sourceLoads []SourceLoadCall
	requests    int
}

// NewMockMetricsService creates a recording metrics mock.
func NewMockMetricsService() *MockMetricsService {
	return &MockMetricsService{}
}

// RecordValidation records a validation outcome.
func (m *MockMetricsService) RecordValidation(
	_ context.Context,
	source string,
	kind domain.ValidationKind,
	valid bool,
	_ time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validations = append(m.validations, ValidationCall{Source: source, Kind: kind, Valid: valid})
}

// RecordSourceLoad records a source load.
func (m *MockMetricsService) RecordSourceLoad(_ context.Context, source string, success bool, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceLoads = append(m.sourceLoads, SourceLoadCall{Source: source, Success: success})
}

// RecordHTTPRequest records an HTTP request.
func (m *MockMetricsService) RecordHTTPRequest(context.Context, string, string, string, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

// Handler returns a handler that serves nothing.
func (m *MockMetricsService) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// Validations returns the recorded validation calls.
func (m *MockMetricsService) Validations() []ValidationCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ValidationCall(nil), m.validations...)
}

// SourceLoads returns the recorded source load calls.
func (m *MockMetricsService) SourceLoads() []SourceLoadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SourceLoadCall(nil), m.sourceLoads...)
}

// Requests returns the number of recorded HTTP requests.
func (m *MockMetricsService) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}
