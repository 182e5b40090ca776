package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrRejectDeclarationCommandIsNotConstructed = errors.New(
	"RejectDeclarationCommand must be created via NewRejectDeclarationCommand constructor",
)

// RejectDeclarationCommand represents an operator rejecting a submitted
// declaration with a reason. The request moves back where the supplier can
// resubmit; the purchase order stays in requested status.
type RejectDeclarationCommand struct { //nolint:recvcheck //using for validation
	actor         services.Actor
	declarationID kernel.UUID
	reason        string

	guard kernel.ConstructorGuard
}

// NewRejectDeclarationCommand creates a command to reject a declaration.
// A reason is required.
func NewRejectDeclarationCommand(
	actor services.Actor, declarationID kernel.UUID, reason string,
) (RejectDeclarationCommand, error) {
	cmd := RejectDeclarationCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeclarationID(declarationID),
		cmd.setReason(reason),
	); err != nil {
		return RejectDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeclarationCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RejectDeclarationCommand) Actor() services.Actor {
	return c.actor
}

// DeclarationID returns the declaration to reject.
func (c RejectDeclarationCommand) DeclarationID() kernel.UUID {
	return c.declarationID
}

// Reason returns the rejection reason shown to the supplier.
func (c RejectDeclarationCommand) Reason() string {
	return c.reason
}

func (c *RejectDeclarationCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *RejectDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}

	c.declarationID = declarationID
	return nil
}

func (c *RejectDeclarationCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
