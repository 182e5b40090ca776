package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetShipsQueryIsNotConstructed = errors.New(
	"GetShipsQuery must be created via NewGetShipsQuery or NewGetMyShipsQuery constructor",
)

// GetShipsQuery retrieves the ships visible to the actor, optionally
// filtered by owning customer and active flag. Customers see their own
// fleet, operators every ship; suppliers have no fleet visibility and
// receive an empty result.
//
// Example:
//
//	query, err := NewGetShipsQuery(actor, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	ships, err := handler.Handle(ctx, query)
type GetShipsQuery struct {
	actor      services.Actor
	customerID *kernel.UUID
	isActive   *bool
	selfScoped bool

	guard kernel.ConstructorGuard
}

// NewGetShipsQuery creates a query to list ships for the given actor.
// customerID and isActive are optional filters.
func NewGetShipsQuery(
	actor services.Actor,
	customerID *kernel.UUID,
	isActive *bool,
) (GetShipsQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetShipsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetShipsQuery{}, err
		}
	}

	return GetShipsQuery{
		actor:      actor,
		customerID: customerID,
		isActive:   isActive,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// NewGetMyShipsQuery creates the customer's self-scoped fleet listing.
// Roles without an own fleet are rejected by the handler with an
// authorization error instead of an empty result.
func NewGetMyShipsQuery(actor services.Actor) (GetShipsQuery, error) {
	query, err := NewGetShipsQuery(actor, nil, nil)
	if err != nil {
		return GetShipsQuery{}, err
	}

	query.selfScoped = true
	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetShipsQuery) Actor() services.Actor {
	return q.actor
}

// CustomerID returns the optional owning-customer filter.
func (q GetShipsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// IsActive returns the optional active-flag filter.
func (q GetShipsQuery) IsActive() *bool {
	return q.isActive
}

// SelfScoped reports whether this is the my-ships listing, which demands
// the customer capability rather than falling back to an empty scope.
func (q GetShipsQuery) SelfScoped() bool {
	return q.selfScoped
}

// GetShipsQueryResponse is one ship row with its owner's company name.
type GetShipsQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerCompany string
	Name            string
	IMONumber       string
	ShipType        string
	GrossTonnage    float64
	YearBuilt       int
	IsActive        bool
	CreatedAt       time.Time
}
