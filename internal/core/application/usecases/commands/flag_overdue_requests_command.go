package commands

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
)

var ErrFlagOverdueRequestsCommandIsNotConstructed = errors.New(
	"FlagOverdueRequestsCommand must be created via NewFlagOverdueRequestsCommand constructor",
)

// FlagOverdueRequestsCommand triggers a sweep over pending declaration
// requests whose due date has passed. It carries no parameters; the
// sweep always covers every overdue request.
type FlagOverdueRequestsCommand struct {
	guard kernel.ConstructorGuard
}

// NewFlagOverdueRequestsCommand creates a command to flag overdue
// declaration requests.
func NewFlagOverdueRequestsCommand() FlagOverdueRequestsCommand {
	return FlagOverdueRequestsCommand{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FlagOverdueRequestsCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueRequestsCommandIsNotConstructed)
}
