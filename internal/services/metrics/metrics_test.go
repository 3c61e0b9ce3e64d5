package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/services/metrics"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

func TestMetricsService_Handler(t *testing.T) {
	t.Parallel()

	service := metrics.NewService(testutils.NewMockLogger())
	service.RecordValidation(context.Background(), "file:/srv/pillar/ceph-salt.sls",
		domain.ValidationKindNone, true, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	recorder := httptest.NewRecorder()
	service.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "pillar_validator_validations_total")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsService_RecordValidation(t *testing.T) {
	t.Parallel()

	service := metrics.NewService(testutils.NewMockLogger())
	ctx := context.Background()
	const source = "redis:ceph-salt"

	service.RecordValidation(ctx, source, domain.ValidationKindNone, true, time.Millisecond)
	service.RecordValidation(ctx, source, domain.ValidationKindMissing, false, time.Millisecond)
	service.RecordValidation(ctx, source, domain.ValidationKindMissing, false, time.Millisecond)

	count, err := testutil.GatherAndCount(service.Registry(), "pillar_validator_validations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per result/kind pair")

	expected := `
# HELP pillar_validator_last_validation_success Whether the last validation of a source passed (1) or failed (0)
# TYPE pillar_validator_last_validation_success gauge
pillar_validator_last_validation_success{source="redis:ceph-salt"} 0
`
	require.NoError(t, testutil.GatherAndCompare(service.Registry(),
		strings.NewReader(expected), "pillar_validator_last_validation_success"))
}

func TestMetricsService_RecordSourceLoad(t *testing.T) {
	t.Parallel()

	service := metrics.NewService(testutils.NewMockLogger())
	ctx := context.Background()

	service.RecordSourceLoad(ctx, "kubernetes:default/ceph-salt-pillar", true, 20*time.Millisecond)
	service.RecordSourceLoad(ctx, "kubernetes:default/ceph-salt-pillar", false, 5*time.Millisecond)

	count, err := testutil.GatherAndCount(service.Registry(), "pillar_validator_source_loads_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetricsService_RecordHTTPRequest(t *testing.T) {
	t.Parallel()

	service := metrics.NewService(testutils.NewMockLogger())
	service.RecordHTTPRequest(context.Background(), http.MethodPost, "/validate", "200", 3*time.Millisecond)

	count, err := testutil.GatherAndCount(service.Registry(), "pillar_validator_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
