package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingLedger defines the persistence contract for tracking events.
// The ledger is append-only: events are never updated or removed, and per
// tracking number the history grows in chronological order.
type TrackingLedger interface {
	// Append records a new event for a tracking number.
	// Fails with tracking.ErrTimestampNotMonotonic when the event's timestamp
	// precedes the latest recorded event for the same tracking number.
	Append(ctx context.Context, event tracking.Event) error

	// GetByTrackingNumber retrieves the full history for a tracking number,
	// ordered oldest first. An empty history is not an error.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.UUID) ([]tracking.Event, error)
}
