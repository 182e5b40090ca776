package commands

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to issue a purchase order
// against a ship. The order starts in pending status with no declaration
// request attached.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actor           services.Actor
	orderID         kernel.UUID
	shipID          kernel.UUID
	orderNumber     string
	title           string
	description     string
	itemName        string
	itemDescription string
	quantity        float64
	unit            string
	orderDate       time.Time
	deliveryDate    *time.Time

	guard kernel.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to issue a purchase order.
// Validates identifiers, the business order number, title and order date.
func NewCreatePurchaseOrderCommand(
	actor services.Actor,
	orderID, shipID kernel.UUID,
	orderNumber, title, description string,
	itemName, itemDescription string,
	quantity float64,
	unit string,
	orderDate time.Time,
	deliveryDate *time.Time,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		description:     description,
		itemName:        itemName,
		itemDescription: itemDescription,
		quantity:        quantity,
		unit:            unit,
		deliveryDate:    deliveryDate,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setShipID(shipID),
		cmd.setOrderNumber(orderNumber),
		cmd.setTitle(title),
		cmd.setOrderDate(orderDate),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreatePurchaseOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier assigned to the new order.
func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipID returns the ship the order is issued against.
func (c CreatePurchaseOrderCommand) ShipID() kernel.UUID {
	return c.shipID
}

// OrderNumber returns the unique business order number.
func (c CreatePurchaseOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Title returns the order title.
func (c CreatePurchaseOrderCommand) Title() string {
	return c.title
}

// Description returns the optional free-text description.
func (c CreatePurchaseOrderCommand) Description() string {
	return c.description
}

// ItemName returns the optional ordered item name.
func (c CreatePurchaseOrderCommand) ItemName() string {
	return c.itemName
}

// ItemDescription returns the optional item description.
func (c CreatePurchaseOrderCommand) ItemDescription() string {
	return c.itemDescription
}

// Quantity returns the optional ordered quantity.
func (c CreatePurchaseOrderCommand) Quantity() float64 {
	return c.quantity
}

// Unit returns the optional quantity unit.
func (c CreatePurchaseOrderCommand) Unit() string {
	return c.unit
}

// OrderDate returns the date the order was placed.
func (c CreatePurchaseOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// DeliveryDate returns the optional expected delivery date.
func (c CreatePurchaseOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c *CreatePurchaseOrderCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreatePurchaseOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}

	c.orderDate = orderDate
	return nil
}
