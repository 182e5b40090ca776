package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand represents an operator resolving a declaration
// request as rejected, with a reason for the supplier.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	requestID kernel.UUID
	reason    string

	guard kernel.ConstructorGuard
}

// NewRejectRequestCommand creates a command to reject a declaration
// request. A reason is required.
func NewRejectRequestCommand(
	actor services.Actor, requestID kernel.UUID, reason string,
) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
		cmd.setReason(reason),
	); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RejectRequestCommand) Actor() services.Actor {
	return c.actor
}

// RequestID returns the request to reject.
func (c RejectRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason returns the rejection reason shown to the supplier.
func (c RejectRequestCommand) Reason() string {
	return c.reason
}

func (c *RejectRequestCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *RejectRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RejectRequestCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
