// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
)

// Forwarder defines the driven port for delivering a contact submission to
// the external form-processing destination.
type Forwarder interface {
	// Forward sends payload to destinationURL in a single attempt. A non-nil
	// error means no usable answer was received (transport failure, timeout,
	// unparsable body). A declined submission is reported through
	// ForwardResult.Success, not as an error.
	Forward(ctx context.Context, destinationURL string, payload model.ForwardPayload) (model.ForwardResult, error)
}
