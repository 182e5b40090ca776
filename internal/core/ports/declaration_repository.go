package ports

import (
	"context"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
)

// DeclarationRequestRepository defines the persistence contract for
// declaration request aggregates. The one-request-per-order invariant is
// checked through GetByPurchaseOrderID before creation and backed by a
// unique constraint in storage.
type DeclarationRequestRepository interface {
	// Add persists a new declaration request. A second request for the
	// same purchase order surfaces as a conflict.
	Add(ctx context.Context, aggregate *declaration.Request) error

	// Update persists changes to an existing declaration request.
	Update(ctx context.Context, aggregate *declaration.Request) error

	// Get retrieves a declaration request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*declaration.Request, error)

	// GetByPurchaseOrderID retrieves the request attached to the given
	// purchase order, or a not-found error if none exists.
	GetByPurchaseOrderID(ctx context.Context, purchaseOrderID kernel.UUID) (*declaration.Request, error)

	// GetAllOverdue retrieves pending requests whose due date lies before
	// the given instant.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*declaration.Request, error)
}

// DeclarationRepository defines the persistence contract for declaration
// aggregates. A declaration and its hazardous material rows are written
// together: Add and Update persist the full aggregate, and Get returns the
// materials in insertion order.
type DeclarationRepository interface {
	// Add persists a new declaration with its material rows.
	Add(ctx context.Context, aggregate *declaration.Declaration) error

	// Update persists changes to an existing declaration, replacing its
	// material rows with the aggregate's current set.
	Update(ctx context.Context, aggregate *declaration.Declaration) error

	// Get retrieves a declaration, with materials, by its unique
	// identifier.
	Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error)

	// GetByRequestID retrieves the declaration attached to the given
	// request, or a not-found error if none exists.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) (*declaration.Declaration, error)
}
