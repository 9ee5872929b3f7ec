package billingrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillingLedger implements BillingLedger using GORM.
type GormBillingLedger struct {
	db *gorm.DB
}

// NewGormBillingLedger creates a new GORM billing ledger.
func NewGormBillingLedger(db *gorm.DB) *GormBillingLedger {
	return &GormBillingLedger{db: db}
}

// Add persists a settlement record.
// The tracking number is the primary key, so a second settlement attempt
// fails with billing.ErrDuplicateSettlement and the original row survives.
func (l *GormBillingLedger) Add(ctx context.Context, record billing.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	var existing int64
	err := l.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("tracking_number = ?", record.TrackingNumber().Bytes()).
		Count(&existing).Error
	if err != nil {
		return err
	}

	if existing > 0 {
		return fmt.Errorf("%w: %s", billing.ErrDuplicateSettlement, record.TrackingNumber())
	}

	dto := fromDomain(record)
	if err = l.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", billing.ErrDuplicateSettlement, record.TrackingNumber())
		}
		return err
	}

	return nil
}

// GetByTrackingNumber retrieves the settlement record for a tracking number.
// Returns errs.ErrObjectNotFound when the parcel has not been settled.
func (l *GormBillingLedger) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.UUID,
) (billing.Record, error) {
	if err := trackingNumber.Validate(); err != nil {
		return billing.Record{}, err
	}

	var dto RecordDTO
	if err := l.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return billing.Record{}, errs.NewObjectNotFoundError("billingRecord", trackingNumber.String())
		}
		return billing.Record{}, err
	}

	return toDomain(dto)
}
