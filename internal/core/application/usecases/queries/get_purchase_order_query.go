package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery retrieves one purchase order by id. The actor's
// visibility is part of the lookup, so an out-of-scope id reads as absent.
type GetPurchaseOrderQuery struct {
	actor   services.Actor
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query for a single purchase order.
func NewGetPurchaseOrderQuery(actor services.Actor, orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetPurchaseOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return GetPurchaseOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetPurchaseOrderQuery) Actor() services.Actor {
	return q.actor
}

// OrderID returns the requested purchase order id.
func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetPurchaseOrderQueryResponse is the full purchase order row, including
// the description fields the listing omits.
type GetPurchaseOrderQueryResponse struct {
	ID              kernel.UUID
	ShipID          kernel.UUID
	ShipName        string
	OrderNumber     string
	Title           string
	Description     string
	ItemName        string
	ItemDescription string
	Quantity        float64
	Unit            string
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Status          string
	CreatedAt       time.Time
}
