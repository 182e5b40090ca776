package commands

import (
	"context"
	"errors"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

// RequestDeclarationCommandHandler handles the business logic for demanding
// a declaration from a supplier. Creating the request and moving the order
// to requested status commit in the same transaction.
type RequestDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewRequestDeclarationCommandHandler creates a handler for declaration
// requests.
func NewRequestDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
) RequestDeclarationCommandHandler {
	return RequestDeclarationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the declaration request command.
//
// Fails with a conflict when the order already has a request or is no
// longer pending, and with not-found when the order lies outside the
// actor's visibility.
func (h *RequestDeclarationCommandHandler) Handle(
	ctx context.Context, cmd RequestDeclarationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionRequestDeclaration); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	po, err := uow.PurchaseOrderRepository().Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if cmd.Actor().Role == account.RoleCustomer {
		if err = h.verifyOrderOwnership(ctx, uow, cmd.Actor(), po.ShipID(), cmd.PurchaseOrderID()); err != nil {
			return err
		}
	}

	_, err = uow.DeclarationRequestRepository().GetByPurchaseOrderID(ctx, cmd.PurchaseOrderID())
	if err == nil {
		return errs.NewConflictError("a declaration request already exists for this purchase order")
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	supplier, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	request, err := declaration.NewRequest(
		cmd.RequestID(), po.ID(), supplier.ID(),
		cmd.DueDate(), cmd.Actor().UserID,
	)
	if err != nil {
		return err
	}

	if err = po.MarkRequested(); err != nil {
		return err
	}

	if err = uow.DeclarationRequestRepository().Add(ctx, request); err != nil {
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

func (h *RequestDeclarationCommandHandler) verifyOrderOwnership(
	ctx context.Context,
	uow DeclarationUoW,
	actor services.Actor,
	shipID, orderID kernel.UUID,
) error {
	ship, err := uow.ShipRepository().Get(ctx, shipID)
	if err != nil {
		return err
	}

	customer, err := uow.CustomerRepository().GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !ship.CustomerID().IsEqual(customer.ID()) {
		return errs.NewObjectNotFoundError("purchaseOrderID", orderID)
	}
	return nil
}
