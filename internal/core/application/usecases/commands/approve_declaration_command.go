package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrApproveDeclarationCommandIsNotConstructed = errors.New(
	"ApproveDeclarationCommand must be created via NewApproveDeclarationCommand constructor",
)

// ApproveDeclarationCommand represents an operator approving a submitted
// declaration. Approval cascades: the declaration request is resolved as
// approved and the purchase order is completed.
type ApproveDeclarationCommand struct { //nolint:recvcheck //using for validation
	actor         services.Actor
	declarationID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewApproveDeclarationCommand creates a command to approve a declaration.
func NewApproveDeclarationCommand(
	actor services.Actor, declarationID kernel.UUID,
) (ApproveDeclarationCommand, error) {
	cmd := ApproveDeclarationCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeclarationID(declarationID),
	); err != nil {
		return ApproveDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeclarationCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c ApproveDeclarationCommand) Actor() services.Actor {
	return c.actor
}

// DeclarationID returns the declaration to approve.
func (c ApproveDeclarationCommand) DeclarationID() kernel.UUID {
	return c.declarationID
}

func (c *ApproveDeclarationCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *ApproveDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}

	c.declarationID = declarationID
	return nil
}
