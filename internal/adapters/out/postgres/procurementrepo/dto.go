// Package procurementrepo provides data transfer objects and mapping
// functions for purchase order persistence.
package procurementrepo

import (
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"

	"github.com/google/uuid"
)

// PurchaseOrderDTO represents the database structure for persisting
// purchase orders. Status is stored as its lowercase string form; the
// order number carries a unique index.
type PurchaseOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipID          uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderNumber     string    `gorm:"uniqueIndex;not null"`
	Title           string    `gorm:"not null"`
	Description     string
	ItemName        string
	ItemDescription string
	Quantity        float64
	Unit            string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Status          string    `gorm:"index;not null"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for purchase orders.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

func fromDomain(po *procurement.PurchaseOrder) PurchaseOrderDTO {
	return PurchaseOrderDTO{
		ID:              po.ID().Bytes(),
		ShipID:          po.ShipID().Bytes(),
		OrderNumber:     po.OrderNumber(),
		Title:           po.Title(),
		Description:     po.Description(),
		ItemName:        po.ItemName(),
		ItemDescription: po.ItemDescription(),
		Quantity:        po.Quantity(),
		Unit:            po.Unit(),
		OrderDate:       po.OrderDate(),
		DeliveryDate:    po.DeliveryDate(),
		Status:          po.Status().String(),
		CreatedBy:       po.CreatedBy().Bytes(),
		CreatedAt:       po.CreatedAt(),
	}
}

func toDomain(dto PurchaseOrderDTO) (*procurement.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipID, err := kernel.UUIDFromBytes(dto.ShipID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := procurement.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return procurement.RestorePurchaseOrder(
		id, shipID,
		dto.OrderNumber, dto.Title, dto.Description, dto.ItemName, dto.ItemDescription,
		dto.Quantity,
		dto.Unit,
		dto.OrderDate,
		dto.DeliveryDate,
		status,
		createdBy,
		dto.CreatedAt,
	)
}
