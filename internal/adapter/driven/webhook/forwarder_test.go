package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ericfisherdev/socialroute/internal/adapter/driven/webhook"
	"github.com/ericfisherdev/socialroute/internal/domain/model"
)

// newTestForwarder creates a Forwarder backed by the given httptest handler
// and a span recorder.
func newTestForwarder(t *testing.T, handler http.HandlerFunc, opts ...webhook.Option) (*webhook.Forwarder, *httptest.Server, *tracetest.SpanRecorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	opts = append([]webhook.Option{
		webhook.WithHTTPClient(server.Client()),
		webhook.WithTracerProvider(tp),
	}, opts...)
	return webhook.NewForwarder(opts...), server, recorder
}

func testPayload() model.ForwardPayload {
	return model.ForwardPayload{
		Name:    "Asha Verma",
		Email:   "asha@example.in",
		Message: "Hello",
	}
}

type capturedRequest struct {
	method      string
	contentType string
	body        map[string]any
}

func TestForward_PostsJSONOnce(t *testing.T) {
	captured := make(chan capturedRequest, 4)

	fwd, server, recorder := newTestForwarder(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		captured <- capturedRequest{method: r.Method, contentType: r.Header.Get("Content-Type"), body: body}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	result, err := fwd.Forward(context.Background(), server.URL+"/macros/s/abc/exec", testPayload())

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, captured, 1, "exactly one request")
	got := <-captured
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, map[string]any{
		"name":    "Asha Verma",
		"email":   "asha@example.in",
		"phone":   "",
		"service": "",
		"message": "Hello",
	}, got.body)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "webhook.Forward", spans[0].Name())
	for _, attr := range spans[0].Attributes() {
		assert.NotContains(t, attr.Value.Emit(), "/macros/s/abc", "deployment path must not be recorded")
	}
}

func TestForward_InjectsTraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	headers := make(chan string, 1)
	fwd, server, recorder := newTestForwarder(t, func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Get("Traceparent")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := fwd.Forward(context.Background(), server.URL, testPayload())
	require.NoError(t, err)

	require.Len(t, headers, 1)
	traceparent := <-headers
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	sc := spans[0].SpanContext()
	assert.Equal(t, "00-"+sc.TraceID().String()+"-"+sc.SpanID().String()+"-01", traceparent)
}

func TestForward_Truthiness(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantMessage string
	}{
		{name: "true", body: `{"success":true}`, wantSuccess: true},
		{name: "false with message", body: `{"success":false,"message":"X"}`, wantSuccess: false, wantMessage: "X"},
		{name: "missing field", body: `{"result":"ok"}`, wantSuccess: false},
		{name: "null", body: `{"success":null}`, wantSuccess: false},
		{name: "zero", body: `{"success":0}`, wantSuccess: false},
		{name: "one", body: `{"success":1}`, wantSuccess: true},
		{name: "empty string", body: `{"success":""}`, wantSuccess: false},
		{name: "non-empty string", body: `{"success":"yes"}`, wantSuccess: true},
		{name: "object", body: `{"success":{}}`, wantSuccess: true},
		{name: "non-string message", body: `{"success":false,"message":{"code":7}}`, wantMessage: `{"code":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd, server, _ := newTestForwarder(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := fwd.Forward(context.Background(), server.URL, testPayload())

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestForward_StatusCodeIgnoredWhenBodyParses(t *testing.T) {
	fwd, server, _ := newTestForwarder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"quota"}`))
	})

	result, err := fwd.Forward(context.Background(), server.URL, testPayload())

	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestForward_NonJSONResponseIsError(t *testing.T) {
	fwd, server, recorder := newTestForwarder(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>Sign in</html>"))
	})

	_, err := fwd.Forward(context.Background(), server.URL, testPayload())

	require.Error(t, err)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestForward_UnreachableDestinationIsError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	fwd := webhook.NewForwarder()
	_, err := fwd.Forward(context.Background(), url, testPayload())

	assert.Error(t, err)
}

func TestForward_InvalidURLMakesNoRequest(t *testing.T) {
	fwd := webhook.NewForwarder()

	for _, u := range []string{"", "not a url", "/relative/path", "::"} {
		_, err := fwd.Forward(context.Background(), u, testPayload())
		assert.Error(t, err, u)
	}
}

func TestForward_TimeoutIsError(t *testing.T) {
	release := make(chan struct{})
	fwd, server, _ := newTestForwarder(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, webhook.WithTimeout(50*time.Millisecond))
	defer close(release)

	start := time.Now()
	_, err := fwd.Forward(context.Background(), server.URL, testPayload())

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
