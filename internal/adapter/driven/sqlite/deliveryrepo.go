package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/socialroute/internal/domain/model"
	"github.com/ericfisherdev/socialroute/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DeliveryStore = (*DeliveryRepo)(nil)

// timeLayout is fixed-width so received_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// DeliveryRepo is the SQLite implementation of the DeliveryStore port interface.
type DeliveryRepo struct {
	db *DB
}

// NewDeliveryRepo creates a new DeliveryRepo backed by the given DB.
func NewDeliveryRepo(db *DB) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// Record inserts one delivery attempt.
func (r *DeliveryRepo) Record(ctx context.Context, d model.Delivery) error {
	const query = `INSERT INTO deliveries (id, received_at, service, outcome) VALUES (?, ?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query,
		d.ID,
		d.ReceivedAt.UTC().Format(timeLayout),
		d.Service,
		string(d.Outcome),
	)
	if err != nil {
		return fmt.Errorf("record delivery %s: %w", d.ID, err)
	}
	return nil
}

// Summary counts deliveries per outcome and reports the most recent
// received_at. Every known outcome is present in Counts.
func (r *DeliveryRepo) Summary(ctx context.Context) (model.DeliverySummary, error) {
	const query = `SELECT outcome, COUNT(*), MAX(received_at) FROM deliveries GROUP BY outcome`

	summary := model.DeliverySummary{
		Counts: make(map[model.DeliveryOutcome]int, len(model.DeliveryOutcomes)),
	}
	for _, o := range model.DeliveryOutcomes {
		summary.Counts[o] = 0
	}

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return model.DeliverySummary{}, fmt.Errorf("summarize deliveries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			outcome string
			count   int
			latest  string
		)
		if err := rows.Scan(&outcome, &count, &latest); err != nil {
			return model.DeliverySummary{}, fmt.Errorf("scan delivery summary: %w", err)
		}
		summary.Counts[model.DeliveryOutcome(outcome)] = count

		ts, err := parseTime(latest)
		if err != nil {
			return model.DeliverySummary{}, fmt.Errorf("parse received_at for %s: %w", outcome, err)
		}
		if ts.After(summary.LastReceived) {
			summary.LastReceived = ts
		}
	}
	if err := rows.Err(); err != nil {
		return model.DeliverySummary{}, fmt.Errorf("iterate delivery summary: %w", err)
	}
	return summary, nil
}

// parseTime attempts to parse a time string using multiple formats
// commonly produced by SQLite.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		timeLayout,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
