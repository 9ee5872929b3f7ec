package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBillingRecordsQueryHandler reads settlement records from the database.
// Results are ordered by settlement time for a stable overview.
type ListBillingRecordsQueryHandler struct {
	db *gorm.DB
}

// NewListBillingRecordsQueryHandler creates a handler for billing overviews.
// Requires a GORM database connection for query execution.
func NewListBillingRecordsQueryHandler(db *gorm.DB) ListBillingRecordsQueryHandler {
	return ListBillingRecordsQueryHandler{db: db}
}

// Handle executes the billing overview query.
// With a customer filter only that customer's records are returned; without
// one every settlement in the system is listed.
func (h ListBillingRecordsQueryHandler) Handle(
	ctx context.Context,
	query ListBillingRecordsQuery,
) ([]ListBillingRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			tracking_number,
			customer_id,
			amount,
			method,
			timestamp
		FROM billing_records
	`

	tx := h.db.WithContext(ctx)
	var rowsQuery *gorm.DB
	if customerID := query.CustomerID(); customerID != nil {
		rowsQuery = tx.Raw(baseQuery+` WHERE customer_id = ? ORDER BY timestamp, tracking_number`,
			customerID.String())
	} else {
		rowsQuery = tx.Raw(baseQuery + ` ORDER BY timestamp, tracking_number`)
	}

	records := make([]ListBillingRecordsQueryResponse, 0)

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record ListBillingRecordsQueryResponse
		var trackingNumber, customerID uuid.UUID

		err = rows.Scan(
			&trackingNumber,
			&customerID,
			&record.Amount,
			&record.Method,
			&record.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		if record.TrackingNumber, err = kernel.UUIDFromBytes(trackingNumber[:]); err != nil {
			return nil, err
		}
		if record.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
