package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrCreateShipCommandIsNotConstructed = errors.New(
	"CreateShipCommand must be created via NewCreateShipCommand constructor",
)

// CreateShipCommand represents a request to register a ship in the fleet.
// Customers register ships under their own profile; operators must name the
// owning customer explicitly.
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	shipID       kernel.UUID
	customerID   *kernel.UUID
	name         string
	imoNumber    string
	shipType     string
	grossTonnage float64
	yearBuilt    int

	guard kernel.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a new ship.
// customerID may be nil when the acting user is a customer; it is then
// resolved from the actor's own profile.
func NewCreateShipCommand(
	actor services.Actor,
	shipID kernel.UUID,
	customerID *kernel.UUID,
	name, imoNumber, shipType string,
	grossTonnage float64,
	yearBuilt int,
) (CreateShipCommand, error) {
	cmd := CreateShipCommand{
		shipType:     shipType,
		grossTonnage: grossTonnage,
		yearBuilt:    yearBuilt,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setShipID(shipID),
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setIMONumber(imoNumber),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreateShipCommand) Actor() services.Actor {
	return c.actor
}

// ShipID returns the identifier assigned to the new ship.
func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// CustomerID returns the owning customer, or nil when the actor's own
// profile is the owner.
func (c CreateShipCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Name returns the ship name.
func (c CreateShipCommand) Name() string {
	return c.name
}

// IMONumber returns the ship's IMO number.
func (c CreateShipCommand) IMONumber() string {
	return c.imoNumber
}

// ShipType returns the optional vessel type.
func (c CreateShipCommand) ShipType() string {
	return c.shipType
}

// GrossTonnage returns the optional gross tonnage.
func (c CreateShipCommand) GrossTonnage() float64 {
	return c.grossTonnage
}

// YearBuilt returns the optional build year.
func (c CreateShipCommand) YearBuilt() int {
	return c.yearBuilt
}

func (c *CreateShipCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *CreateShipCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *CreateShipCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setIMONumber(imoNumber string) error {
	if imoNumber == "" {
		return errs.NewValueIsRequiredError("imoNumber")
	}

	c.imoNumber = imoNumber
	return nil
}
