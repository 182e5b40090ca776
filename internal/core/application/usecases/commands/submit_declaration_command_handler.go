package commands

import (
	"context"
	"errors"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

// SubmitDeclarationCommandHandler handles the compound declaration
// submission. In a single transaction it resolves the supplier's profile,
// locates or creates the declaration request for the purchase order,
// creates the declaration with its material rows (or amends a rejected
// one), and advances the request and order statuses.
type SubmitDeclarationCommandHandler struct {
	uowFactory DeclarationUoWFactory
	policy     services.AccessPolicy
}

// NewSubmitDeclarationCommandHandler creates a handler for declaration
// submission.
func NewSubmitDeclarationCommandHandler(
	uowFactory DeclarationUoWFactory,
) SubmitDeclarationCommandHandler {
	return SubmitDeclarationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the declaration submission command.
//
// Conflicts arise when the request names a different supplier, when a
// non-rejected declaration already answers the order, or when the order
// cannot move to requested status for a freshly created request.
func (h *SubmitDeclarationCommandHandler) Handle(
	ctx context.Context, cmd SubmitDeclarationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor().Role, services.ActionSubmitDeclaration); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplier, err := uow.SupplierRepository().GetByUserID(ctx, cmd.Actor().UserID)
	if err != nil {
		return err
	}

	po, err := uow.PurchaseOrderRepository().Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	request, freshRequest, err := h.resolveRequest(ctx, uow, cmd, po.ID(), supplier.ID())
	if err != nil {
		return err
	}

	materials, err := buildMaterials(cmd.Materials())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	decl, freshDeclaration, err := h.resolveDeclaration(ctx, uow, cmd, request, po.ShipID(), supplier.ID())
	if err != nil {
		return err
	}

	decl.SetItemDetails(cmd.ItemName(), cmd.Manufacturer(), cmd.ModelNumber())
	decl.SetCompliance(cmd.ComplianceStatus(), cmd.CertificationNumber())
	decl.Sign(cmd.SupplierSignature(), cmd.SupplierName(), cmd.SignatureDate())
	if err = decl.ReplaceMaterials(materials); err != nil {
		return err
	}
	if err = decl.MarkSubmitted(now); err != nil {
		return err
	}

	if err = request.MarkSubmitted(); err != nil {
		return err
	}

	if freshDeclaration {
		err = uow.DeclarationRepository().Add(ctx, decl)
	} else {
		err = uow.DeclarationRepository().Update(ctx, decl)
	}
	if err != nil {
		return err
	}

	if freshRequest {
		if err = po.MarkRequested(); err != nil {
			return err
		}
		if err = uow.DeclarationRequestRepository().Add(ctx, request); err != nil {
			return err
		}
		if err = uow.PurchaseOrderRepository().Update(ctx, po); err != nil {
			return err
		}
	} else {
		if err = uow.DeclarationRequestRepository().Update(ctx, request); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveRequest finds the declaration request for the order or creates one
// on the supplier's behalf. An existing request naming another supplier is
// a conflict.
func (h *SubmitDeclarationCommandHandler) resolveRequest(
	ctx context.Context,
	uow DeclarationUoW,
	cmd SubmitDeclarationCommand,
	purchaseOrderID, supplierID kernel.UUID,
) (*declaration.Request, bool, error) {
	request, err := uow.DeclarationRequestRepository().GetByPurchaseOrderID(ctx, purchaseOrderID)
	if err == nil {
		if !request.SupplierID().IsEqual(supplierID) {
			return nil, false, errs.NewConflictError(
				"the declaration request for this purchase order names a different supplier",
			)
		}
		return request, false, nil
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return nil, false, err
	}

	request, err = declaration.NewRequest(
		kernel.NewUUID(), purchaseOrderID, supplierID,
		nil, cmd.Actor().UserID,
	)
	if err != nil {
		return nil, false, err
	}
	return request, true, nil
}

// resolveDeclaration finds an amendable rejected declaration for the
// request or creates a fresh draft. A declaration in any other status is a
// conflict: the order is already answered.
func (h *SubmitDeclarationCommandHandler) resolveDeclaration(
	ctx context.Context,
	uow DeclarationUoW,
	cmd SubmitDeclarationCommand,
	request *declaration.Request,
	shipID, supplierID kernel.UUID,
) (*declaration.Declaration, bool, error) {
	existing, err := uow.DeclarationRepository().GetByRequestID(ctx, request.ID())
	if err == nil {
		if existing.Status() != declaration.StatusRejected {
			return nil, false, errs.NewConflictError(
				"a declaration has already been submitted for this purchase order",
			)
		}
		if err = existing.Amend(cmd.DeclarationNumber(), cmd.Title(), cmd.DeclarationType()); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return nil, false, err
	}

	decl, err := declaration.NewDeclaration(
		cmd.DeclarationID(), request.ID(), supplierID, shipID,
		cmd.DeclarationNumber(), cmd.Title(), cmd.DeclarationType(),
	)
	if err != nil {
		return nil, false, err
	}
	return decl, true, nil
}

func buildMaterials(inputs []MaterialInput) ([]*declaration.HazardousMaterial, error) {
	materials := make([]*declaration.HazardousMaterial, 0, len(inputs))
	for _, in := range inputs {
		material, err := declaration.NewHazardousMaterial(
			kernel.NewUUID(),
			in.MaterialName, in.CASNumber,
			in.ContentPercentage,
			in.LocationInProduct, in.Remarks,
		)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	return materials, nil
}
