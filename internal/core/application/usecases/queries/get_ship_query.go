package queries

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetShipQueryIsNotConstructed = errors.New(
	"GetShipQuery must be created via NewGetShipQuery constructor",
)

// GetShipQuery retrieves one ship by id. The actor's visibility is part of
// the lookup, so an out-of-scope id reads as absent.
type GetShipQuery struct {
	actor  services.Actor
	shipID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetShipQuery creates a query for a single ship.
func NewGetShipQuery(actor services.Actor, shipID kernel.UUID) (GetShipQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetShipQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if err := shipID.Validate(); err != nil {
		return GetShipQuery{}, err
	}

	return GetShipQuery{
		actor:  actor,
		shipID: shipID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipQuery) Validate() error {
	return q.guard.Validate(ErrGetShipQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetShipQuery) Actor() services.Actor {
	return q.actor
}

// ShipID returns the requested ship id.
func (q GetShipQuery) ShipID() kernel.UUID {
	return q.shipID
}
