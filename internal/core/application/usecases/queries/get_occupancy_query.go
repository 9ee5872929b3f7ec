package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetOccupancyQueryIsNotConstructed = errors.New(
	"GetOccupancyQuery must be created via NewGetOccupancyQuery constructor",
)

// GetOccupancyQuery retrieves the current occupancy of every warehouse and
// vehicle in the network. Used by the operations dashboard and the periodic
// occupancy report.
type GetOccupancyQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOccupancyQuery creates an occupancy overview query.
func NewGetOccupancyQuery() GetOccupancyQuery {
	return GetOccupancyQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetOccupancyQueryIsNotConstructed)
}

// GetOccupancyQueryResponse represents the slot usage of one resource.
type GetOccupancyQueryResponse struct {
	Kind     string
	Name     string
	Occupied int
	Capacity int
}
