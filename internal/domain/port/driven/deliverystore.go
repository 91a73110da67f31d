package driven

import (
	"context"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
)

// DeliveryStore defines the driven port for the contact delivery ledger.
type DeliveryStore interface {
	// Record appends one delivery attempt.
	Record(ctx context.Context, d model.Delivery) error

	// Summary counts recorded attempts per outcome. Outcomes with no rows
	// are reported as zero.
	Summary(ctx context.Context) (model.DeliverySummary, error)
}
