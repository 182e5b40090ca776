package fleetrepo

import (
	"context"
	"errors"

	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository.
func NewGormShipRepository(db *gorm.DB, tracker aggregateTracker) *GormShipRepository {
	return &GormShipRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ship to the database. A duplicate IMO number maps to a
// conflict.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *fleet.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("a ship with this IMO number is already registered", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ship to the database. Select("*") forces zero
// values through, so deactivation persists.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *fleet.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ship", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ship by ID.
func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves every ship owned by the given customer.
func (r *GormShipRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*fleet.Ship, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	ships := make([]*fleet.Ship, 0, len(dtos))
	for _, dto := range dtos {
		ship, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}

	return ships, nil
}
