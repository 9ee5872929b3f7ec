package ports

import (
	"context"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
)

// BillingLedger defines the persistence contract for settlement records.
// At most one record ever exists per tracking number.
type BillingLedger interface {
	// Add persists a settlement record.
	// Fails with billing.ErrDuplicateSettlement when a record already exists
	// for the tracking number.
	Add(ctx context.Context, record billing.Record) error

	// GetByTrackingNumber retrieves the settlement record for a tracking number.
	// Returns errs.ErrObjectNotFound when the parcel has not been settled.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.UUID) (billing.Record, error)
}
