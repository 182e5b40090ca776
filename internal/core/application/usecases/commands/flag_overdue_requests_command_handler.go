package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrNoOverdueRequests signals that the sweep found nothing past due.
// Callers treat it as an expected outcome, not a failure.
var ErrNoOverdueRequests = errors.New("no overdue declaration requests found")

// FlagOverdueRequestsCommandHandler sweeps pending declaration requests
// whose due date has passed and reports each one. The requests stay
// pending; the sweep surfaces them for operator follow-up without
// changing workflow state.
type FlagOverdueRequestsCommandHandler struct {
	uowFactory DeclarationUoWFactory
	logger     *slog.Logger
}

// NewFlagOverdueRequestsCommandHandler creates a handler for the overdue
// request sweep.
func NewFlagOverdueRequestsCommandHandler(
	uowFactory DeclarationUoWFactory, logger *slog.Logger,
) FlagOverdueRequestsCommandHandler {
	return FlagOverdueRequestsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the overdue request sweep.
func (h *FlagOverdueRequestsCommandHandler) Handle(ctx context.Context, cmd FlagOverdueRequestsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	overdue, err := uow.DeclarationRequestRepository().GetAllOverdue(ctx, now)
	if err != nil {
		return err
	}

	if len(overdue) == 0 {
		return ErrNoOverdueRequests
	}

	for _, request := range overdue {
		h.logger.WarnContext(ctx, "Declaration request is overdue",
			"requestID", request.ID().String(),
			"purchaseOrderID", request.PurchaseOrderID().String(),
			"supplierID", request.SupplierID().String(),
			"dueDate", request.DueDate(),
		)
	}

	return nil
}
