package commands

import (
	"context"

	"ihm/internal/core/domain/services"
)

// ApproveRequestCommandHandler handles operator approval of a declaration
// request. Terminal requests cannot be re-resolved; the attempt is a
// conflict.
type ApproveRequestCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewApproveRequestCommandHandler creates a handler for request approval.
func NewApproveRequestCommandHandler(
	uowFactory DeclarationUoWFactory,
) ApproveRequestCommandHandler {
	return ApproveRequestCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the request approval command.
func (h *ApproveRequestCommandHandler) Handle(ctx context.Context, cmd ApproveRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionApproveRequest); err != nil {
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

	if err = request.Approve(); err != nil {
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
