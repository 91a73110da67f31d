package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/socialroute/internal/adapter/driving/http"
	"github.com/ericfisherdev/socialroute/internal/application"
	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockForwarder struct {
	mu     sync.Mutex
	calls  int
	result model.ForwardResult
	err    error
}

func (m *mockForwarder) Forward(_ context.Context, _ string, _ model.ForwardPayload) (model.ForwardResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.result, m.err
}

func (m *mockForwarder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockDeliveryStore struct {
	summary model.DeliverySummary
	err     error
}

func (m *mockDeliveryStore) Record(_ context.Context, _ model.Delivery) error { return nil }
func (m *mockDeliveryStore) Summary(_ context.Context) (model.DeliverySummary, error) {
	return m.summary, m.err
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type panicSubmitter struct{}

func (panicSubmitter) Submit(_ context.Context, _ model.ContactSubmission) error { panic("boom") }
func (panicSubmitter) DeliverySummary(_ context.Context) (model.DeliverySummary, error) {
	return model.DeliverySummary{}, nil
}

type observation struct {
	route  string
	method string
	status int
}

type mockObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (m *mockObserver) ObserveHTTP(route, method string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, observation{route: route, method: method, status: status})
}

// --- Test helpers ---

const testDestination = "https://script.example.test/macros/s/abc/exec"

func setupMux(fwd *mockForwarder, destination string) http.Handler {
	svc := application.NewContactService(fwd, nil, func() string { return destination }, nil, nil)
	return setupMuxWith(httphandler.NewHandler(svc, nil, nil, slog.Default()), nil)
}

func setupMuxWith(h *httphandler.Handler, observer httphandler.HTTPObserver) http.Handler {
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h)
	return httphandler.ApplyMiddleware(mux, slog.Default(), observer)
}

func postContact(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	err := json.NewDecoder(rec.Body).Decode(v)
	require.NoError(t, err)
}

func decodeContact(t *testing.T, rec *httptest.ResponseRecorder) httphandler.ContactResponse {
	t.Helper()
	var resp httphandler.ContactResponse
	decodeJSON(t, rec, &resp)
	return resp
}

// --- Tests ---

func TestSubmitContact_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "missing name", body: `{"email":"a@b.co","message":"hi"}`, wantMessage: "Missing required fields"},
		{name: "missing email", body: `{"name":"Asha","message":"hi"}`, wantMessage: "Missing required fields"},
		{name: "missing message", body: `{"name":"Asha","email":"a@b.co"}`, wantMessage: "Missing required fields"},
		{name: "empty object", body: `{}`, wantMessage: "Missing required fields"},
		{name: "empty strings", body: `{"name":"","email":"","message":""}`, wantMessage: "Missing required fields"},
		{name: "missing fields win over bad email", body: `{"name":"Asha","email":"foo"}`, wantMessage: "Missing required fields"},
		{name: "email without at", body: `{"name":"Asha","email":"foo","message":"hi"}`, wantMessage: "Invalid email format"},
		{name: "email without tld", body: `{"name":"Asha","email":"a@b","message":"hi"}`, wantMessage: "Invalid email format"},
		{name: "email without local part", body: `{"name":"Asha","email":"@b.com","message":"hi"}`, wantMessage: "Invalid email format"},
		{name: "email with space", body: `{"name":"Asha","email":"a b@c.com","message":"hi"}`, wantMessage: "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := &mockForwarder{result: model.ForwardResult{Success: true}}
			handler := setupMux(fwd, testDestination)

			rec := postContact(t, handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, httphandler.ContactResponse{Success: false, Message: tt.wantMessage}, decodeContact(t, rec))
			assert.Equal(t, 0, fwd.callCount(), "forwarding must not be attempted")
		})
	}
}

func TestSubmitContact_Success(t *testing.T) {
	fwd := &mockForwarder{result: model.ForwardResult{Success: true}}
	handler := setupMux(fwd, testDestination)

	rec := postContact(t, handler, `{"name":"Asha","email":"asha@example.in","phone":"+91 98100 00000","service":"seo","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully!"}`, rec.Body.String())
	assert.Equal(t, 1, fwd.callCount())
}

func TestSubmitContact_DownstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		fwd  *mockForwarder
	}{
		{name: "declined with message", fwd: &mockForwarder{result: model.ForwardResult{Success: false, Message: "X"}}},
		{name: "transport error", fwd: &mockForwarder{err: errors.New("dial tcp: connection refused X")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupMux(tt.fwd, testDestination)

			rec := postContact(t, handler, `{"name":"Asha","email":"asha@example.in","message":"Hello"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			raw := rec.Body.String()
			assert.NotContains(t, raw, "X", "downstream detail must not reach the caller")
			assert.JSONEq(t, `{"success":false,"message":"Failed to send message. Please try again."}`, raw)
			assert.Equal(t, 1, tt.fwd.callCount(), "no retry")
		})
	}
}

func TestSubmitContact_DestinationNotConfigured(t *testing.T) {
	fwd := &mockForwarder{result: model.ForwardResult{Success: true}}
	handler := setupMux(fwd, "")

	rec := postContact(t, handler, `{"name":"Asha","email":"asha@example.in","message":"Hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, httphandler.ContactResponse{Success: false, Message: "Server configuration error"}, decodeContact(t, rec))
	assert.Equal(t, 0, fwd.callCount())
}

func TestSubmitContact_UndecodableBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"name":`},
		{name: "not json", body: `name=Asha`},
		{name: "null", body: `null`},
		{name: "wrong field type", body: `{"name":5,"email":"a@b.co","message":"hi"}`},
		{name: "trailing data", body: `{"name":"Asha","email":"a@b.co","message":"hi"} {}`},
		{name: "oversized", body: `{"name":"Asha","email":"a@b.co","message":"` + strings.Repeat("a", 70<<10) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := &mockForwarder{result: model.ForwardResult{Success: true}}
			handler := setupMux(fwd, testDestination)

			rec := postContact(t, handler, tt.body)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Failed to send message. Please try again.", decodeContact(t, rec).Message)
			assert.Equal(t, 0, fwd.callCount())
		})
	}
}

func TestSubmitContact_MethodNotAllowed(t *testing.T) {
	handler := setupMux(&mockForwarder{}, testDestination)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	handler := setupMuxWith(httphandler.NewHandler(panicSubmitter{}, nil, nil, slog.Default()), nil)

	rec := postContact(t, handler, `{}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeContact(t, rec).Success)
}

func TestHealth(t *testing.T) {
	last := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	summary := model.DeliverySummary{
		Counts: map[model.DeliveryOutcome]int{
			model.DeliveryOutcomeDelivered: 3,
			model.DeliveryOutcomeFailed:    1,
		},
		LastReceived: last,
	}

	tests := []struct {
		name           string
		ledger         httphandler.Pinger
		store          *mockDeliveryStore
		wantStatus     string
		wantLedger     string
		wantDeliveries bool
	}{
		{name: "no ledger", wantStatus: "ok", wantLedger: "disabled"},
		{
			name:           "healthy ledger",
			ledger:         &mockPinger{},
			store:          &mockDeliveryStore{summary: summary},
			wantStatus:     "ok",
			wantLedger:     "ok",
			wantDeliveries: true,
		},
		{
			name:       "unreachable ledger",
			ledger:     &mockPinger{err: errors.New("disk I/O error")},
			store:      &mockDeliveryStore{summary: summary},
			wantStatus: "degraded",
			wantLedger: "unavailable",
		},
		{
			name:       "summary fails",
			ledger:     &mockPinger{},
			store:      &mockDeliveryStore{err: errors.New("no such table")},
			wantStatus: "degraded",
			wantLedger: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store driven.DeliveryStore
			if tt.store != nil {
				store = tt.store
			}
			svc := application.NewContactService(&mockForwarder{}, store, func() string { return "" }, nil, nil)
			handler := setupMuxWith(httphandler.NewHandler(svc, tt.ledger, nil, slog.Default()), nil)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			var resp httphandler.HealthResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantLedger, resp.Ledger)
			_, err := time.Parse(time.RFC3339, resp.Time)
			assert.NoError(t, err)

			if !tt.wantDeliveries {
				assert.Nil(t, resp.Deliveries)
				return
			}
			require.NotNil(t, resp.Deliveries)
			assert.Equal(t, map[string]int{
				"delivered":    3,
				"rejected":     0,
				"unconfigured": 0,
				"failed":       1,
			}, resp.Deliveries.Counts)
			assert.Equal(t, "2026-02-01T09:30:00Z", resp.Deliveries.LastReceived)
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	svc := application.NewContactService(&mockForwarder{}, nil, func() string { return "" }, nil, nil)

	t.Run("registered when provided", func(t *testing.T) {
		metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("socialroute_up 1\n"))
		})
		handler := setupMuxWith(httphandler.NewHandler(svc, nil, metrics, slog.Default()), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "socialroute_up 1\n", rec.Body.String())
	})

	t.Run("absent otherwise", func(t *testing.T) {
		handler := setupMuxWith(httphandler.NewHandler(svc, nil, nil, slog.Default()), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMiddleware_ObservesMatchedPattern(t *testing.T) {
	fwd := &mockForwarder{result: model.ForwardResult{Success: true}}
	svc := application.NewContactService(fwd, nil, func() string { return testDestination }, nil, nil)
	observer := &mockObserver{}
	handler := setupMuxWith(httphandler.NewHandler(svc, nil, nil, slog.Default()), observer)

	postContact(t, handler, `{"name":"Asha","email":"asha@example.in","message":"Hello"}`)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	require.Len(t, observer.obs, 2)
	assert.Equal(t, observation{route: "POST /api/contact", method: http.MethodPost, status: http.StatusOK}, observer.obs[0])
	assert.Equal(t, observation{route: "", method: http.MethodGet, status: http.StatusNotFound}, observer.obs[1])
}
