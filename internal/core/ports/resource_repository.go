package ports

import (
	"context"

	"logistics/internal/core/domain/model/capacity"
)

// ResourceRepository defines the persistence contract for capacity resources.
// A running system holds exactly one warehouse and one vehicle; both are
// loaded with their full occupancy so admission checks see current state.
type ResourceRepository interface {
	// Add persists a new resource with its occupancy.
	// Used at startup to seed the warehouse and the vehicle.
	Add(ctx context.Context, aggregate *capacity.Resource) error

	// Update persists occupancy changes to an existing resource.
	Update(ctx context.Context, aggregate *capacity.Resource) error

	// GetByKind retrieves the single resource of the given kind with its
	// complete occupancy set.
	GetByKind(ctx context.Context, kind capacity.Kind) (*capacity.Resource, error)
}
