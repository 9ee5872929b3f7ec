package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListBillingRecordsQueryIsNotConstructed = errors.New(
	"ListBillingRecordsQuery must be created via NewListBillingRecordsQuery constructor",
)

// ListBillingRecordsQuery retrieves settlement records, optionally filtered
// to a single customer. Intended for the billing overview available to the
// admin role.
type ListBillingRecordsQuery struct {
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListBillingRecordsQuery creates a query over all settlement records.
func NewListBillingRecordsQuery() ListBillingRecordsQuery {
	return ListBillingRecordsQuery{guard: guard.NewConstructorGuard()}
}

// NewListBillingRecordsQueryForCustomer creates a query restricted to one customer.
func NewListBillingRecordsQueryForCustomer(customerID kernel.UUID) (ListBillingRecordsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListBillingRecordsQuery{}, err
	}

	return ListBillingRecordsQuery{
		customerID: &customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListBillingRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListBillingRecordsQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil when listing all records.
func (q ListBillingRecordsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ListBillingRecordsQueryResponse represents one settlement record.
type ListBillingRecordsQueryResponse struct {
	TrackingNumber kernel.UUID
	CustomerID     kernel.UUID
	Amount         decimal.Decimal
	Method         string
	Timestamp      time.Time
}
