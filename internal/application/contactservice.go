// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// Errors returned by ContactService.Submit past validation. They carry no
// downstream detail; the cause is logged where it happens.
var (
	ErrDestinationNotConfigured = errors.New("forwarding destination not configured")
	ErrDeliveryFailed           = errors.New("contact delivery failed")
)

// OutcomeRecorder receives one call per submission attempt.
type OutcomeRecorder interface {
	RecordContactOutcome(outcome model.DeliveryOutcome)
}

// ContactService relays contact submissions to the forwarding destination.
// Each submission gets exactly one forwarding attempt.
type ContactService struct {
	forwarder   driven.Forwarder
	ledger      driven.DeliveryStore
	destination func() string
	outcomes    OutcomeRecorder
	services    map[string]bool
	now         func() time.Time
}

// NewContactService creates a ContactService. destination is consulted on
// every submission so the URL may change while the server runs. ledger and
// outcomes may be nil. serviceIDs lists the service categories the ledger
// may record; any other value is stored as empty.
func NewContactService(
	forwarder driven.Forwarder,
	ledger driven.DeliveryStore,
	destination func() string,
	outcomes OutcomeRecorder,
	serviceIDs []string,
) *ContactService {
	services := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		services[id] = true
	}
	return &ContactService{
		forwarder:   forwarder,
		ledger:      ledger,
		destination: destination,
		outcomes:    outcomes,
		services:    services,
		now:         time.Now,
	}
}

// Submit validates sub and forwards it. It returns model.ErrMissingFields or
// model.ErrInvalidEmail for bad input, ErrDestinationNotConfigured when no
// destination is set, ErrDeliveryFailed when the destination could not be
// reached or declined the submission, and nil once the destination confirms.
func (s *ContactService) Submit(ctx context.Context, sub model.ContactSubmission) error {
	if err := sub.Validate(); err != nil {
		s.record(ctx, sub, model.DeliveryOutcomeRejected)
		return err
	}

	url := s.destination()
	if url == "" {
		slog.Error("contact forwarding destination is not configured")
		s.record(ctx, sub, model.DeliveryOutcomeUnconfigured)
		return ErrDestinationNotConfigured
	}

	result, err := s.forwarder.Forward(ctx, url, sub.Payload())
	if err != nil {
		slog.Error("contact forward failed", "error", err)
		s.record(ctx, sub, model.DeliveryOutcomeFailed)
		return ErrDeliveryFailed
	}
	if !result.Success {
		slog.Error("contact destination declined submission", "detail", result.Message)
		s.record(ctx, sub, model.DeliveryOutcomeFailed)
		return ErrDeliveryFailed
	}

	s.record(ctx, sub, model.DeliveryOutcomeDelivered)
	return nil
}

// record writes the ledger row and metric for one attempt. Ledger errors are
// logged and never change the submission result.
func (s *ContactService) record(ctx context.Context, sub model.ContactSubmission, outcome model.DeliveryOutcome) {
	if s.outcomes != nil {
		s.outcomes.RecordContactOutcome(outcome)
	}
	if s.ledger == nil {
		return
	}

	service := ""
	if s.services[sub.Service] {
		service = sub.Service
	}

	d := model.Delivery{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
		Service:    service,
		Outcome:    outcome,
	}
	if err := s.ledger.Record(context.WithoutCancel(ctx), d); err != nil {
		slog.Error("failed to record contact delivery", "outcome", outcome, "error", err)
	}
}

// DeliverySummary returns ledger counts per outcome. Without a ledger every
// count is zero.
func (s *ContactService) DeliverySummary(ctx context.Context) (model.DeliverySummary, error) {
	if s.ledger == nil {
		return emptySummary(), nil
	}
	return s.ledger.Summary(ctx)
}

func emptySummary() model.DeliverySummary {
	counts := make(map[model.DeliveryOutcome]int, len(model.DeliveryOutcomes))
	for _, o := range model.DeliveryOutcomes {
		counts[o] = 0
	}
	return model.DeliverySummary{Counts: counts}
}
