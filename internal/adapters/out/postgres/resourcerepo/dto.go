// Package resourcerepo provides data transfer objects and mapping functions for
// capacity resource persistence. Occupancy is stored in a separate join table so
// the slot set survives restarts and occupancy reports can count it directly.
package resourcerepo

import (
	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ResourceDTO represents the database structure for persisting capacity resources.
type ResourceDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind      string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Capacity  int            `gorm:"type:int;not null"`
	Occupancy []OccupancyDTO `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for resource entities.
// Overrides GORM's default naming convention to use "resources".
func (ResourceDTO) TableName() string {
	return "resources"
}

// OccupancyDTO represents one occupied slot: a parcel currently held by a resource.
type OccupancyDTO struct {
	ResourceID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for occupancy entries.
// Overrides GORM's default naming convention to use "resource_occupancy".
func (OccupancyDTO) TableName() string {
	return "resource_occupancy"
}

// fromDomain converts a resource domain entity to its database representation.
// The occupancy snapshot is expanded into one row per occupied slot.
func fromDomain(resource *capacity.Resource) ResourceDTO {
	resourceID := resource.ID().Bytes()
	occupied := resource.Occupied()

	occupancy := make([]OccupancyDTO, 0, len(occupied))
	for _, trackingNumber := range occupied {
		occupancy = append(occupancy, OccupancyDTO{
			ResourceID:     resourceID,
			TrackingNumber: trackingNumber.Bytes(),
		})
	}

	return ResourceDTO{
		ID:        resourceID,
		Kind:      resource.Kind().String(),
		Name:      resource.Name(),
		Capacity:  resource.Capacity(),
		Occupancy: occupancy,
	}
}

// toDomain converts a database DTO to a resource domain entity.
// Reconstructs the entity with its full occupancy set using RestoreResource.
func toDomain(dto ResourceDTO) (*capacity.Resource, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := capacity.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	occupied := make([]kernel.UUID, 0, len(dto.Occupancy))
	for _, entry := range dto.Occupancy {
		trackingNumber, tnErr := kernel.UUIDFromBytes(entry.TrackingNumber[:])
		if tnErr != nil {
			return nil, tnErr
		}
		occupied = append(occupied, trackingNumber)
	}

	return capacity.RestoreResource(id, kind, dto.Name, dto.Capacity, occupied)
}
