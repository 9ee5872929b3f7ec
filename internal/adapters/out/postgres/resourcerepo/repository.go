package resourcerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/capacity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormResourceRepository implements ResourceRepository using GORM.
type GormResourceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormResourceRepository creates a new GORM resource repository.
func NewGormResourceRepository(db *gorm.DB, tracker aggregateTracker) *GormResourceRepository {
	return &GormResourceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new resource with its occupancy to the database.
func (r *GormResourceRepository) Add(ctx context.Context, aggregate *capacity.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves occupancy changes for an existing resource.
// Released slots must disappear from the join table, so the occupancy rows
// are replaced rather than merged.
func (r *GormResourceRepository) Update(ctx context.Context, aggregate *capacity.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ResourceDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"kind":     dto.Kind,
		"name":     dto.Name,
		"capacity": dto.Capacity,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("resource_id = ?", dto.ID).Delete(&OccupancyDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Occupancy) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Occupancy).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByKind retrieves the single resource of the given kind with its occupancy.
// The resource row is locked FOR UPDATE so that two transactions contending
// for slots serialize on the read-admit-write sequence; without the lock the
// second committer would overwrite the first one's occupancy rows.
func (r *GormResourceRepository) GetByKind(ctx context.Context, kind capacity.Kind) (*capacity.Resource, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dto ResourceDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Occupancy").
		First(&dto, "kind = ?", kind.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resource", kind.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
