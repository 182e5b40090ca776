package commands

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrRequestDeclarationCommandIsNotConstructed = errors.New(
	"RequestDeclarationCommand must be created via NewRequestDeclarationCommand constructor",
)

// RequestDeclarationCommand represents a request to demand a material
// declaration from a supplier for a purchase order. At most one request may
// exist per order.
type RequestDeclarationCommand struct { //nolint:recvcheck //using for validation
	actor           services.Actor
	requestID       kernel.UUID
	purchaseOrderID kernel.UUID
	supplierID      kernel.UUID
	dueDate         *time.Time

	guard kernel.ConstructorGuard
}

// NewRequestDeclarationCommand creates a command to attach a declaration
// request to a purchase order. dueDate is optional.
func NewRequestDeclarationCommand(
	actor services.Actor,
	requestID, purchaseOrderID, supplierID kernel.UUID,
	dueDate *time.Time,
) (RequestDeclarationCommand, error) {
	cmd := RequestDeclarationCommand{
		dueDate: dueDate,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return RequestDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeclarationCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RequestDeclarationCommand) Actor() services.Actor {
	return c.actor
}

// RequestID returns the identifier assigned to the new request.
func (c RequestDeclarationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// PurchaseOrderID returns the order the declaration is demanded for.
func (c RequestDeclarationCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

// SupplierID returns the supplier expected to submit the declaration.
func (c RequestDeclarationCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// DueDate returns the optional submission deadline.
func (c RequestDeclarationCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *RequestDeclarationCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *RequestDeclarationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestDeclarationCommand) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}

	c.purchaseOrderID = purchaseOrderID
	return nil
}

func (c *RequestDeclarationCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierID", err)
	}

	c.supplierID = supplierID
	return nil
}
