package commands

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/core/ports"
	"ihm/internal/pkg/errs"
)

// CreateShipCommandHandler handles the business logic for ship registration.
// Resolves the owning customer from the actor's profile or the explicit
// customer id, then persists the ship. Duplicate IMO numbers surface as a
// conflict from the repository.
type CreateShipCommandHandler struct {
	uowFactory FleetUoWFactory
	policy     services.AccessPolicy
}

// NewCreateShipCommandHandler creates a handler for ship registration.
func NewCreateShipCommandHandler(uowFactory FleetUoWFactory) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the ship registration command.
func (h *CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionCreateShip); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerID, err := resolveCustomerID(ctx, uow.CustomerRepository(), cmd.Actor(), cmd.CustomerID())
	if err != nil {
		return err
	}

	ship, err := fleet.NewShip(cmd.ShipID(), customerID, cmd.Name(), cmd.IMONumber())
	if err != nil {
		return err
	}
	ship.SetParticulars(cmd.ShipType(), cmd.GrossTonnage(), cmd.YearBuilt())

	if err = uow.ShipRepository().Add(ctx, ship); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveCustomerID yields the owning customer for a fleet operation.
// Customers always own through their profile; the explicit id is for
// operators acting on a customer's behalf.
func resolveCustomerID(
	ctx context.Context,
	customers ports.CustomerRepository,
	actor services.Actor,
	explicitID *kernel.UUID,
) (kernel.UUID, error) {
	if actor.Role == account.RoleCustomer {
		customer, err := customers.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return kernel.UUID{}, err
		}
		return customer.ID(), nil
	}

	if explicitID == nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("customerID")
	}

	customer, err := customers.Get(ctx, *explicitID)
	if err != nil {
		return kernel.UUID{}, err
	}
	return customer.ID(), nil
}
