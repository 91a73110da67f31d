package model

import "time"

// DeliveryOutcome records how a contact submission attempt ended.
type DeliveryOutcome string

const (
	DeliveryOutcomeDelivered    DeliveryOutcome = "delivered"
	DeliveryOutcomeRejected     DeliveryOutcome = "rejected"     // Failed validation.
	DeliveryOutcomeUnconfigured DeliveryOutcome = "unconfigured" // No destination set.
	DeliveryOutcomeFailed       DeliveryOutcome = "failed"       // Destination errored or declined.
)

// DeliveryOutcomes lists every outcome in reporting order.
var DeliveryOutcomes = []DeliveryOutcome{
	DeliveryOutcomeDelivered,
	DeliveryOutcomeRejected,
	DeliveryOutcomeUnconfigured,
	DeliveryOutcomeFailed,
}

// Delivery is one ledger row. It carries no visitor data beyond the chosen
// service category.
type Delivery struct {
	ID         string
	ReceivedAt time.Time
	Service    string
	Outcome    DeliveryOutcome
}

// DeliverySummary counts ledger rows per outcome.
type DeliverySummary struct {
	Counts       map[DeliveryOutcome]int
	LastReceived time.Time
}
