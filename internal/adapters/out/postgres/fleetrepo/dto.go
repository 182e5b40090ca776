// Package fleetrepo provides data transfer objects and mapping functions
// for ship persistence.
package fleetrepo

import (
	"time"

	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ShipDTO represents the database structure for persisting ships. The IMO
// number carries a unique index; a ship keeps its identity across owners
// and paperwork.
type ShipDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"not null"`
	IMONumber    string    `gorm:"column:imo_number;uniqueIndex;not null"`
	ShipType     string
	GrossTonnage float64
	YearBuilt    int
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for ship entities.
func (ShipDTO) TableName() string {
	return "ships"
}

func fromDomain(ship *fleet.Ship) ShipDTO {
	return ShipDTO{
		ID:           ship.ID().Bytes(),
		CustomerID:   ship.CustomerID().Bytes(),
		Name:         ship.Name(),
		IMONumber:    ship.IMONumber(),
		ShipType:     ship.ShipType(),
		GrossTonnage: ship.GrossTonnage(),
		YearBuilt:    ship.YearBuilt(),
		IsActive:     ship.IsActive(),
		CreatedAt:    ship.CreatedAt(),
	}
}

func toDomain(dto ShipDTO) (*fleet.Ship, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return fleet.RestoreShip(
		id, customerID,
		dto.Name, dto.IMONumber, dto.ShipType,
		dto.GrossTonnage,
		dto.YearBuilt,
		dto.IsActive,
		dto.CreatedAt,
	)
}
