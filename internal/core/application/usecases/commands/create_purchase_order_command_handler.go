package commands

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

// CreatePurchaseOrderCommandHandler handles the business logic for purchase
// order creation. The target ship must exist and, for customers, belong to
// the actor's own fleet.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory ProcurementUoWFactory
	policy     services.AccessPolicy
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase order
// creation.
func NewCreatePurchaseOrderCommandHandler(
	uowFactory ProcurementUoWFactory,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the purchase order creation command.
func (h *CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context, cmd CreatePurchaseOrderCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionCreatePurchaseOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ship, err := uow.ShipRepository().Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	if cmd.Actor().Role == account.RoleCustomer {
		customer, err := uow.CustomerRepository().GetByUserID(ctx, cmd.Actor().UserID)
		if err != nil {
			return err
		}
		if !ship.CustomerID().IsEqual(customer.ID()) {
			return errs.NewObjectNotFoundError("shipID", cmd.ShipID())
		}
	}

	po, err := procurement.NewPurchaseOrder(
		cmd.OrderID(), ship.ID(),
		cmd.OrderNumber(), cmd.Title(),
		cmd.OrderDate(), cmd.Actor().UserID,
	)
	if err != nil {
		return err
	}
	po.SetDescription(cmd.Description())
	po.SetItemDetails(cmd.ItemName(), cmd.ItemDescription(), cmd.Quantity(), cmd.Unit())
	po.SetDeliveryDate(cmd.DeliveryDate())

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
