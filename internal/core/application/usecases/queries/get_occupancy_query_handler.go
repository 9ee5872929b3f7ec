package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOccupancyQueryHandler reads resource occupancy from the database.
// Occupied counts come from the occupancy join table, so a resource with no
// admitted parcels still shows up with a zero count.
type GetOccupancyQueryHandler struct {
	db *gorm.DB
}

// NewGetOccupancyQueryHandler creates a handler for occupancy overviews.
// Requires a GORM database connection for query execution.
func NewGetOccupancyQueryHandler(db *gorm.DB) GetOccupancyQueryHandler {
	return GetOccupancyQueryHandler{db: db}
}

// Handle executes the occupancy query.
// Resources are ordered by kind then name for a stable report layout.
func (h GetOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetOccupancyQuery,
) ([]GetOccupancyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resources := make([]GetOccupancyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.kind,
			r.name,
			COUNT(o.tracking_number) AS occupied,
			r.capacity
		FROM resources r
		LEFT JOIN resource_occupancy o ON o.resource_id = r.id
		GROUP BY r.id, r.kind, r.name, r.capacity
		ORDER BY r.kind, r.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resource GetOccupancyQueryResponse

		err = rows.Scan(
			&resource.Kind,
			&resource.Name,
			&resource.Occupied,
			&resource.Capacity,
		)
		if err != nil {
			return nil, err
		}

		resources = append(resources, resource)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}
