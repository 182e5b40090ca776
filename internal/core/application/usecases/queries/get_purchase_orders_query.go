package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetPurchaseOrdersQueryIsNotConstructed = errors.New(
	"GetPurchaseOrdersQuery must be created via NewGetPurchaseOrdersQuery constructor",
)

// GetPurchaseOrdersQuery retrieves the purchase orders visible to the
// actor, optionally filtered by status and ship. Customers see orders of
// their own ships, suppliers the orders whose declaration request names
// them.
type GetPurchaseOrdersQuery struct {
	actor  services.Actor
	status *procurement.Status
	shipID *kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetPurchaseOrdersQuery creates a query to list purchase orders.
// status and shipID are optional filters.
func NewGetPurchaseOrdersQuery(
	actor services.Actor,
	status *procurement.Status,
	shipID *kernel.UUID,
) (GetPurchaseOrdersQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetPurchaseOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetPurchaseOrdersQuery{}, err
		}
	}
	if shipID != nil {
		if err := shipID.Validate(); err != nil {
			return GetPurchaseOrdersQuery{}, err
		}
	}

	return GetPurchaseOrdersQuery{
		actor:  actor,
		status: status,
		shipID: shipID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetPurchaseOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q GetPurchaseOrdersQuery) Status() *procurement.Status {
	return q.status
}

// ShipID returns the optional ship filter.
func (q GetPurchaseOrdersQuery) ShipID() *kernel.UUID {
	return q.shipID
}

// GetPurchaseOrdersQueryResponse is one purchase order row with its ship
// name denormalized for listing.
type GetPurchaseOrdersQueryResponse struct {
	ID           kernel.UUID
	ShipID       kernel.UUID
	ShipName     string
	OrderNumber  string
	Title        string
	ItemName     string
	Quantity     float64
	Unit         string
	OrderDate    time.Time
	DeliveryDate *time.Time
	Status       string
}
