package telemetry_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/telemetry"
)

func TestMetrics_ContactOutcomesStartAtZero(t *testing.T) {
	m := telemetry.NewMetrics()

	count, err := testutil.GatherAndCount(m.Registry(), "socialroute_contact_submissions_total")

	require.NoError(t, err)
	assert.Equal(t, len(model.DeliveryOutcomes), count, "one series per outcome")
}

func TestMetrics_RecordContactOutcome(t *testing.T) {
	m := telemetry.NewMetrics()

	m.RecordContactOutcome(model.DeliveryOutcomeDelivered)
	m.RecordContactOutcome(model.DeliveryOutcomeDelivered)
	m.RecordContactOutcome(model.DeliveryOutcomeRejected)

	body := scrape(t, m)
	assert.Contains(t, body, `socialroute_contact_submissions_total{outcome="delivered"} 2`)
	assert.Contains(t, body, `socialroute_contact_submissions_total{outcome="rejected"} 1`)
	assert.Contains(t, body, `socialroute_contact_submissions_total{outcome="failed"} 0`)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := telemetry.NewMetrics()

	m.ObserveHTTP("POST /api/contact", http.MethodPost, http.StatusBadRequest, 20*time.Millisecond)
	m.ObserveHTTP("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `socialroute_http_requests_total{method="POST",route="POST /api/contact",status_code="400"} 1`)
	assert.Contains(t, body, `socialroute_http_requests_total{method="GET",route="unmatched",status_code="404"} 1`)
	assert.Contains(t, body, `socialroute_http_request_duration_seconds_count{method="POST",route="POST /api/contact"} 1`)
}

func TestMetrics_RegistriesAreIndependent(t *testing.T) {
	a := telemetry.NewMetrics()
	b := telemetry.NewMetrics()

	a.RecordContactOutcome(model.DeliveryOutcomeFailed)

	assert.Contains(t, scrape(t, a), `outcome="failed"} 1`)
	assert.Contains(t, scrape(t, b), `outcome="failed"} 0`)
}

func scrape(t *testing.T, m *telemetry.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
