package commands

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

// UpdateShipCommandHandler handles the business logic for ship updates.
// A customer updating a ship they do not own gets a not-found error, never
// a hint that the ship exists.
type UpdateShipCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateShipCommandHandler creates a handler for ship updates.
func NewUpdateShipCommandHandler(uowFactory FleetUoWFactory) UpdateShipCommandHandler {
	return UpdateShipCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the ship update command.
func (h *UpdateShipCommandHandler) Handle(ctx context.Context, cmd UpdateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionUpdateShip); err != nil {
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

	if err = ship.Rename(cmd.Name()); err != nil {
		return err
	}
	ship.SetParticulars(cmd.ShipType(), cmd.GrossTonnage(), cmd.YearBuilt())
	if cmd.IsActive() {
		ship.Activate()
	} else {
		ship.Deactivate()
	}

	if err = uow.ShipRepository().Update(ctx, ship); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
