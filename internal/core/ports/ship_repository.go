package ports

import (
	"context"

	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"
)

// ShipRepository defines the persistence contract for ship aggregates.
// Visibility scoping is enforced by the use cases on top of these plain
// CRUD operations.
type ShipRepository interface {
	// Add persists a new ship. A duplicate IMO number surfaces as a
	// conflict.
	Add(ctx context.Context, aggregate *fleet.Ship) error

	// Update persists changes to an existing ship.
	Update(ctx context.Context, aggregate *fleet.Ship) error

	// Get retrieves a ship by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Ship, error)

	// GetAllByCustomer retrieves every ship owned by the given customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*fleet.Ship, error)
}
