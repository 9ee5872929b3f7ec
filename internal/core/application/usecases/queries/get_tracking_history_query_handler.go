package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads a parcel's event history from the database.
// Results are ordered oldest first, matching the append order of the ledger.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for history lookups.
// Requires a GORM database connection for query execution.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the history query.
// An unknown tracking number yields an empty slice.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetTrackingHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			timestamp,
			location,
			status_description,
			actor_role
		FROM tracking_events
		WHERE tracking_number = ?
		ORDER BY timestamp, id
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetTrackingHistoryQueryResponse
		var trackingNumber uuid.UUID

		err = rows.Scan(
			&trackingNumber,
			&event.Timestamp,
			&event.Location,
			&event.StatusDescription,
			&event.ActorRole,
		)
		if err != nil {
			return nil, err
		}

		if event.TrackingNumber, err = kernel.UUIDFromBytes(trackingNumber[:]); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
