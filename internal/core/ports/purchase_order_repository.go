package ports

import (
	"context"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
)

// PurchaseOrderRepository defines the persistence contract for purchase
// order aggregates.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order. A duplicate order number surfaces
	// as a conflict.
	Add(ctx context.Context, aggregate *procurement.PurchaseOrder) error

	// Update persists changes to an existing purchase order.
	Update(ctx context.Context, aggregate *procurement.PurchaseOrder) error

	// Get retrieves a purchase order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*procurement.PurchaseOrder, error)
}
