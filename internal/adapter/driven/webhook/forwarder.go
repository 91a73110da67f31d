// Package webhook implements the Forwarder port as a single JSON POST to the
// operator's form-processing endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Forwarder = (*Forwarder)(nil)

const (
	tracerName = "github.com/ericfisherdev/socialroute/internal/adapter/driven/webhook"

	// maxResponseBytes bounds how much of the destination's answer is read.
	maxResponseBytes = 1 << 20
)

// Forwarder posts contact payloads to a webhook. It never retries.
type Forwarder struct {
	client *http.Client
	tracer trace.Tracer
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithTimeout bounds each forward call, including reading the response.
// Zero means no limit beyond the request context.
func WithTimeout(d time.Duration) Option {
	return func(f *Forwarder) {
		f.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying client. Intended for tests that
// point the forwarder at an httptest server.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Forwarder) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTracerProvider sets the provider spans are created from. Defaults to
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(f *Forwarder) {
		if tp != nil {
			f.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewForwarder creates a Forwarder with its own http.Client.
func NewForwarder(opts ...Option) *Forwarder {
	f := &Forwarder{
		client: &http.Client{},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// response is the destination's answer. success is kept raw so any JSON value
// can be judged for truthiness.
type response struct {
	Success json.RawMessage `json:"success"`
	Message json.RawMessage `json:"message"`
}

// Forward sends payload to destinationURL and decodes the answer. The HTTP
// status code is not inspected: the destination signals failure in the body.
func (f *Forwarder) Forward(ctx context.Context, destinationURL string, payload model.ForwardPayload) (model.ForwardResult, error) {
	ctx, span := f.tracer.Start(ctx, "webhook.Forward", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	result, err := f.forward(ctx, span, destinationURL, payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "forward failed")
		return model.ForwardResult{}, err
	}
	span.SetAttributes(attribute.Bool("contact.forward.success", result.Success))
	if !result.Success {
		span.SetStatus(codes.Error, "destination declined")
	}
	return result, nil
}

func (f *Forwarder) forward(ctx context.Context, span trace.Span, destinationURL string, payload model.ForwardPayload) (model.ForwardResult, error) {
	u, err := url.Parse(destinationURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return model.ForwardResult{}, errors.New("invalid destination URL")
	}
	// The path of an Apps Script URL identifies the deployment, so only the
	// host is recorded.
	span.SetAttributes(
		attribute.String("http.request.method", http.MethodPost),
		attribute.String("server.address", u.Host),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return model.ForwardResult{}, fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destinationURL, bytes.NewReader(body))
	if err != nil {
		return model.ForwardResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := f.client.Do(req)
	if err != nil {
		return model.ForwardResult{}, fmt.Errorf("posting to destination: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	var r response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&r); err != nil {
		return model.ForwardResult{}, fmt.Errorf("decoding destination response (status %d): %w", resp.StatusCode, err)
	}

	return model.ForwardResult{
		Success: truthy(r.Success),
		Message: messageText(r.Message),
	}, nil
}

// truthy reports whether a JSON value counts as true in a boolean context:
// false, null, 0, "" and a missing value are false; everything else is true.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
