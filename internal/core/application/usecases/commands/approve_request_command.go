package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrApproveRequestCommandIsNotConstructed = errors.New(
	"ApproveRequestCommand must be created via NewApproveRequestCommand constructor",
)

// ApproveRequestCommand represents an operator resolving a declaration
// request as accepted without going through a declaration review.
type ApproveRequestCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	requestID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewApproveRequestCommand creates a command to approve a declaration
// request.
func NewApproveRequestCommand(
	actor services.Actor, requestID kernel.UUID,
) (ApproveRequestCommand, error) {
	cmd := ApproveRequestCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return ApproveRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveRequestCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c ApproveRequestCommand) Actor() services.Actor {
	return c.actor
}

// RequestID returns the request to approve.
func (c ApproveRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *ApproveRequestCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *ApproveRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
