// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read directly from the database,
// returning plain response structs shaped for presentation.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves the full intake record and current custody status
// of a single parcel by its tracking number.
type GetParcelQuery struct {
	trackingNumber kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for a single parcel.
func NewGetParcelQuery(trackingNumber kernel.UUID) (GetParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingNumber returns the parcel to look up.
func (q GetParcelQuery) TrackingNumber() kernel.UUID {
	return q.trackingNumber
}

// GetParcelQueryResponse represents the complete parcel record.
// Enum fields carry their wire names; the status carries its display name.
type GetParcelQueryResponse struct {
	TrackingNumber    kernel.UUID
	SenderName        string
	WeightKg          float64
	Dimensions        string
	DeclaredValue     decimal.Decimal
	Description       string
	Kind              string
	ServiceLevel      string
	SpecialServices   []string
	DistanceKm        float64
	BillingCost       decimal.Decimal
	CustomerID        kernel.UUID
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     string
	CustomerType      string
	TargetAddress     string
	BillingPreference string
	Status            string
}
