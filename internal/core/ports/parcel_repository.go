// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcels with their
// complete intake record and current custody state.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its tracking number.
	// Returns the complete parcel with its current custody status.
	Get(ctx context.Context, trackingNumber kernel.UUID) (*parcel.Parcel, error)

	// GetAllInStatus retrieves all parcels currently in the given custody status.
	// Used by reporting to enumerate parcels held at a lifecycle stage.
	GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error)
}
