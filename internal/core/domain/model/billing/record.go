package billing

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrDuplicateSettlement indicates that a billing record already exists
	// for the tracking number. The ledger enforces at-most-once settlement;
	// the delivery confirmation handler absorbs this error when the parcel
	// has already logically reached Delivered.
	ErrDuplicateSettlement = errors.New("settlement already recorded for this tracking number")
)

// Record is a settlement entry, created exactly once per parcel upon
// delivery confirmation. Settlement is recorded, not executed: the method
// field is a note of how the customer asked to pay, not a gateway call.
type Record struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.UUID
	customerID     kernel.UUID
	amount         decimal.Decimal
	method         string
	timestamp      time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a settlement record for a delivered parcel.
// The amount is the billing cost quoted at intake; it must not be negative.
func NewRecord(
	trackingNumber kernel.UUID,
	customerID kernel.UUID,
	amount decimal.Decimal,
	method string,
	timestamp time.Time,
) (Record, error) {
	record := Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setTrackingNumber(trackingNumber),
		record.setCustomerID(customerID),
		record.setAmount(amount),
		record.setMethod(method),
		record.setTimestamp(timestamp),
	); err != nil {
		return Record{}, err
	}

	return record, nil
}

// Validate ensures the record was created through the constructor.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// TrackingNumber returns the parcel this settlement belongs to.
func (r Record) TrackingNumber() kernel.UUID {
	return r.trackingNumber
}

// CustomerID returns the customer charged for the delivery.
func (r Record) CustomerID() kernel.UUID {
	return r.customerID
}

// Amount returns the settled amount.
func (r Record) Amount() decimal.Decimal {
	return r.amount
}

// Method returns the settlement note.
func (r Record) Method() string {
	return r.method
}

// Timestamp returns when the settlement was recorded.
func (r Record) Timestamp() time.Time {
	return r.timestamp
}

func (r *Record) setTrackingNumber(trackingNumber kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	r.trackingNumber = trackingNumber
	return nil
}

func (r *Record) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Record) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is negative", amount))
	}
	r.amount = amount
	return nil
}

func (r *Record) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method is required")
	}
	r.method = method
	return nil
}

func (r *Record) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp is required")
	}
	r.timestamp = timestamp
	return nil
}
