// Package httphandler is the JSON API driving adapter: the contact relay,
// the health probe and the metrics endpoint.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/socialroute/internal/application"
	"github.com/ericfisherdev/socialroute/internal/domain/model"
)

// maxContactBodyBytes caps the contact request body.
const maxContactBodyBytes = 64 << 10

// Response messages for POST /api/contact. Only the two validation messages
// name a cause; everything past validation uses msgSendFailed.
const (
	msgSent           = "Message sent successfully!"
	msgMissingFields  = "Missing required fields"
	msgInvalidEmail   = "Invalid email format"
	msgNotConfigured  = "Server configuration error"
	msgSendFailed     = "Failed to send message. Please try again."
	msgInternalServer = "internal server error"
)

// ContactSubmitter relays one contact submission.
type ContactSubmitter interface {
	Submit(ctx context.Context, sub model.ContactSubmission) error
	DeliverySummary(ctx context.Context) (model.DeliverySummary, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	contact ContactSubmitter
	ledger  Pinger
	metrics http.Handler
	logger  *slog.Logger
}

// NewHandler creates a Handler. ledger and metrics may be nil; /metrics is
// not registered without a metrics handler.
func NewHandler(contact ContactSubmitter, ledger Pinger, metrics http.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		contact: contact,
		ledger:  ledger,
		metrics: metrics,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers the API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /api/contact", h.SubmitContact)
	mux.HandleFunc("GET /api/health", h.Health)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

// SubmitContact decodes a contact submission and relays it.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(http.MaxBytesReader(w, r.Body, maxContactBodyBytes))
	if err != nil {
		h.logger.Error("failed to decode contact submission", "error", err)
		writeContact(w, http.StatusInternalServerError, false, msgSendFailed)
		return
	}

	err = h.contact.Submit(r.Context(), sub)
	switch {
	case err == nil:
		writeContact(w, http.StatusOK, true, msgSent)
	case errors.Is(err, model.ErrMissingFields):
		writeContact(w, http.StatusBadRequest, false, msgMissingFields)
	case errors.Is(err, model.ErrInvalidEmail):
		writeContact(w, http.StatusBadRequest, false, msgInvalidEmail)
	case errors.Is(err, application.ErrDestinationNotConfigured):
		writeContact(w, http.StatusInternalServerError, false, msgNotConfigured)
	default:
		writeContact(w, http.StatusInternalServerError, false, msgSendFailed)
	}
}

// decodeSubmission reads exactly one JSON object. A JSON null, trailing
// data or an oversized body is an error.
func decodeSubmission(body io.Reader) (model.ContactSubmission, error) {
	dec := json.NewDecoder(body)

	var sub *model.ContactSubmission
	if err := dec.Decode(&sub); err != nil {
		return model.ContactSubmission{}, err
	}
	if sub == nil {
		return model.ContactSubmission{}, errors.New("request body is null")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.ContactSubmission{}, errors.New("unexpected data after JSON object")
	}
	return *sub, nil
}

// Health reports liveness plus the delivery ledger's state. A broken ledger
// degrades the report but never fails the health check, since submissions are
// still relayed without it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Ledger: ledgerDisabled,
	}

	if h.ledger != nil {
		resp.Ledger = ledgerOK
		if err := h.ledger.Ping(r.Context()); err != nil {
			h.logger.Error("ledger ping failed", "error", err)
			resp.Status = "degraded"
			resp.Ledger = ledgerUnavailable
		}
	}

	if resp.Ledger == ledgerOK {
		summary, err := h.contact.DeliverySummary(r.Context())
		if err != nil {
			h.logger.Error("failed to summarize deliveries", "error", err)
			resp.Status = "degraded"
		} else {
			resp.Deliveries = toDeliveriesResponse(summary)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
