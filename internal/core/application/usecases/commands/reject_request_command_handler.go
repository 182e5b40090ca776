package commands

import (
	"context"

	"ihm/internal/core/domain/services"
)

// RejectRequestCommandHandler handles operator rejection of a declaration
// request.
type RejectRequestCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewRejectRequestCommandHandler creates a handler for request rejection.
func NewRejectRequestCommandHandler(
	uowFactory DeclarationUoWFactory,
) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the request rejection command.
func (h *RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionRejectRequest); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := uow.DeclarationRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = uow.DeclarationRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
