package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeContact writes the contact endpoint's {success, message} body.
func writeContact(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, ContactResponse{Success: success, Message: message})
}

// writeError writes a failure body in the same shape the contact endpoint uses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeContact(w, status, false, message)
}

// ContactResponse is the body of every /api/contact response.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Ledger states reported by the health endpoint.
const (
	ledgerOK          = "ok"
	ledgerUnavailable = "unavailable"
	ledgerDisabled    = "disabled"
)

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status     string              `json:"status"`
	Time       string              `json:"time"`
	Ledger     string              `json:"ledger"`
	Deliveries *DeliveriesResponse `json:"deliveries,omitempty"`
}

// DeliveriesResponse summarizes the delivery ledger.
type DeliveriesResponse struct {
	Counts       map[string]int `json:"counts"`
	LastReceived string         `json:"last_received,omitempty"`
}

// toDeliveriesResponse converts a domain DeliverySummary to its JSON representation.
func toDeliveriesResponse(s model.DeliverySummary) *DeliveriesResponse {
	counts := make(map[string]int, len(model.DeliveryOutcomes))
	for _, o := range model.DeliveryOutcomes {
		counts[string(o)] = s.Counts[o]
	}

	resp := &DeliveriesResponse{Counts: counts}
	if !s.LastReceived.IsZero() {
		resp.LastReceived = s.LastReceived.UTC().Format(time.RFC3339)
	}
	return resp
}
