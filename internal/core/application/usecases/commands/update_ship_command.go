package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrUpdateShipCommandIsNotConstructed = errors.New(
	"UpdateShipCommand must be created via NewUpdateShipCommand constructor",
)

// UpdateShipCommand represents a request to change a ship's particulars or
// active flag. Customers may only update their own ships.
type UpdateShipCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	shipID       kernel.UUID
	name         string
	shipType     string
	grossTonnage float64
	yearBuilt    int
	isActive     bool

	guard kernel.ConstructorGuard
}

// NewUpdateShipCommand creates a command to update an existing ship.
func NewUpdateShipCommand(
	actor services.Actor,
	shipID kernel.UUID,
	name, shipType string,
	grossTonnage float64,
	yearBuilt int,
	isActive bool,
) (UpdateShipCommand, error) {
	cmd := UpdateShipCommand{
		shipType:     shipType,
		grossTonnage: grossTonnage,
		yearBuilt:    yearBuilt,
		isActive:     isActive,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipID(shipID),
		cmd.setName(name),
	); err != nil {
		return UpdateShipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c UpdateShipCommand) Actor() services.Actor {
	return c.actor
}

// ShipID returns the ship to update.
func (c UpdateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the new ship name.
func (c UpdateShipCommand) Name() string {
	return c.name
}

// ShipType returns the new vessel type.
func (c UpdateShipCommand) ShipType() string {
	return c.shipType
}

// GrossTonnage returns the new gross tonnage.
func (c UpdateShipCommand) GrossTonnage() float64 {
	return c.grossTonnage
}

// YearBuilt returns the new build year.
func (c UpdateShipCommand) YearBuilt() int {
	return c.yearBuilt
}

// IsActive returns the new active flag.
func (c UpdateShipCommand) IsActive() bool {
	return c.isActive
}

func (c *UpdateShipCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *UpdateShipCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *UpdateShipCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
