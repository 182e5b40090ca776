package commands

import (
	"context"
	"time"

	"ihm/internal/core/domain/services"
)

// ApproveDeclarationCommandHandler handles operator approval of a
// declaration. The declaration, its request, and the purchase order advance
// together in one transaction: declaration approved, request approved,
// order completed.
type ApproveDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewApproveDeclarationCommandHandler creates a handler for declaration
// approval.
func NewApproveDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
) ApproveDeclarationCommandHandler {
	return ApproveDeclarationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the declaration approval command.
func (h *ApproveDeclarationCommandHandler) Handle(
	ctx context.Context, cmd ApproveDeclarationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionApproveDeclaration); err != nil {
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

	if err = decl.Approve(cmd.Actor().UserID, time.Now().UTC()); err != nil {
		return err
	}

	request, err := uow.DeclarationRequestRepository().Get(ctx, decl.RequestID())
	if err != nil {
		return err
	}
	if err = request.Approve(); err != nil {
		return err
	}

	po, err := uow.PurchaseOrderRepository().Get(ctx, request.PurchaseOrderID())
	if err != nil {
		return err
	}
	if err = po.MarkCompleted(); err != nil {
		return err
	}

	if err = uow.DeclarationRepository().Update(ctx, decl); err != nil {
		return err
	}
	if err = uow.DeclarationRequestRepository().Update(ctx, request); err != nil {
		return err
	}
	if err = uow.PurchaseOrderRepository().Update(ctx, po); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
