package trackingrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingLedger implements TrackingLedger using GORM.
type GormTrackingLedger struct {
	db *gorm.DB
}

// NewGormTrackingLedger creates a new GORM tracking ledger.
func NewGormTrackingLedger(db *gorm.DB) *GormTrackingLedger {
	return &GormTrackingLedger{db: db}
}

// Append records a new event for a tracking number.
// The ledger enforces timestamp monotonicity per tracking number: an event
// older than the latest recorded one is rejected and nothing is written.
func (l *GormTrackingLedger) Append(ctx context.Context, event tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	var latest EventDTO
	err := l.db.WithContext(ctx).
		Where("tracking_number = ?", event.TrackingNumber().Bytes()).
		Order("timestamp DESC, id DESC").
		First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil && event.Timestamp().Before(latest.Timestamp) {
		return fmt.Errorf("%w: %s precedes %s for %s",
			tracking.ErrTimestampNotMonotonic,
			event.Timestamp().Format("2006-01-02T15:04:05.000Z07:00"),
			latest.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
			event.TrackingNumber())
	}

	dto := fromDomain(event)
	return l.db.WithContext(ctx).Create(&dto).Error
}

// GetByTrackingNumber retrieves the full history for a tracking number,
// ordered oldest first. An unknown tracking number yields an empty history.
func (l *GormTrackingLedger) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.UUID,
) ([]tracking.Event, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := l.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber.Bytes()).
		Order("timestamp, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
