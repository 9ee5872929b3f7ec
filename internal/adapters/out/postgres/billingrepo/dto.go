// Package billingrepo provides data transfer objects and mapping functions for
// the settlement ledger. The tracking number is the primary key, which makes
// at-most-once settlement a database constraint rather than a convention.
package billingrepo

import (
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordDTO represents the database structure for persisting settlement records.
type RecordDTO struct {
	TrackingNumber uuid.UUID       `gorm:"type:uuid;primaryKey;column:tracking_number"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method         string          `gorm:"type:varchar(64);not null"`
	Timestamp      time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for settlement records.
// Overrides GORM's default naming convention to use "billing_records".
func (RecordDTO) TableName() string {
	return "billing_records"
}

// fromDomain converts a settlement record to its database representation.
func fromDomain(record billing.Record) RecordDTO {
	return RecordDTO{
		TrackingNumber: record.TrackingNumber().Bytes(),
		CustomerID:     record.CustomerID().Bytes(),
		Amount:         record.Amount(),
		Method:         record.Method(),
		Timestamp:      record.Timestamp(),
	}
}

// toDomain converts a database DTO to a settlement record.
func toDomain(dto RecordDTO) (billing.Record, error) {
	trackingNumber, err := kernel.UUIDFromBytes(dto.TrackingNumber[:])
	if err != nil {
		return billing.Record{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return billing.Record{}, err
	}

	return billing.NewRecord(trackingNumber, customerID, dto.Amount, dto.Method, dto.Timestamp)
}
