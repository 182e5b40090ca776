package commands

import (
	"context"
	"time"

	"ihm/internal/core/domain/services"
)

// RejectDeclarationCommandHandler handles operator rejection of a
// declaration. The declaration and its request move to rejected in one
// transaction; the purchase order keeps its requested status so the
// supplier can resubmit.
type RejectDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewRejectDeclarationCommandHandler creates a handler for declaration
// rejection.
func NewRejectDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
) RejectDeclarationCommandHandler {
	return RejectDeclarationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the declaration rejection command.
func (h *RejectDeclarationCommandHandler) Handle(
	ctx context.Context, cmd RejectDeclarationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionRejectDeclaration); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	decl, err := uow.DeclarationRepository().Get(ctx, cmd.DeclarationID())
	if err != nil {
		return err
	}

	if err = decl.Reject(cmd.Actor().UserID, time.Now().UTC(), cmd.Reason()); err != nil {
		return err
	}

	request, err := uow.DeclarationRequestRepository().Get(ctx, decl.RequestID())
	if err != nil {
		return err
	}
	if err = request.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = uow.DeclarationRepository().Update(ctx, decl); err != nil {
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
