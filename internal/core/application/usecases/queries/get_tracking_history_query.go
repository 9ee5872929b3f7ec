package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the full event history of a parcel,
// oldest first. A parcel with no recorded events yields an empty history,
// not an error.
type GetTrackingHistoryQuery struct {
	trackingNumber kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a parcel's event history.
func NewGetTrackingHistoryQuery(trackingNumber kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// TrackingNumber returns the parcel whose history is requested.
func (q GetTrackingHistoryQuery) TrackingNumber() kernel.UUID {
	return q.trackingNumber
}

// GetTrackingHistoryQueryResponse represents one entry of a parcel's history.
type GetTrackingHistoryQueryResponse struct {
	TrackingNumber    kernel.UUID
	Timestamp         time.Time
	Location          string
	StatusDescription string
	ActorRole         string
}
