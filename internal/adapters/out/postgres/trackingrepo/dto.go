// Package trackingrepo provides data transfer objects and mapping functions for
// the tracking event ledger. Events are append-only rows; the auto-incremented
// id column breaks ties between events sharing a timestamp.
package trackingrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting tracking events.
type EventDTO struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	TrackingNumber    uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp         time.Time `gorm:"not null"`
	Location          string    `gorm:"type:varchar(255);not null"`
	StatusDescription string    `gorm:"type:varchar(64);not null"`
	ActorRole         string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for tracking events.
// Overrides GORM's default naming convention to use "tracking_events".
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
// The id column is left zero so the database assigns the next value.
func fromDomain(event tracking.Event) EventDTO {
	return EventDTO{
		TrackingNumber:    event.TrackingNumber().Bytes(),
		Timestamp:         event.Timestamp(),
		Location:          event.Location(),
		StatusDescription: event.StatusDescription(),
		ActorRole:         event.ActorRole().String(),
	}
}

// toDomain converts a database DTO to a tracking event.
func toDomain(dto EventDTO) (tracking.Event, error) {
	trackingNumber, err := kernel.UUIDFromBytes(dto.TrackingNumber[:])
	if err != nil {
		return tracking.Event{}, err
	}

	actorRole, err := kernel.RoleFromString(dto.ActorRole)
	if err != nil {
		return tracking.Event{}, err
	}

	return tracking.NewEvent(trackingNumber, dto.Timestamp, dto.Location, dto.StatusDescription, actorRole)
}
