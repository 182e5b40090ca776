package queries

import (
	"context"
	"database/sql"
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeclarationDetailQueryHandler retrieves one declaration with its
// material rows. The actor's visibility is part of the row lookup, so an
// out-of-scope id reads as absent.
type GetDeclarationDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetDeclarationDetailQueryHandler creates a handler for declaration
// detail queries.
func NewGetDeclarationDetailQueryHandler(db *gorm.DB) GetDeclarationDetailQueryHandler {
	return GetDeclarationDetailQueryHandler{db: db}
}

// Handle executes the query. Materials come back in submission order.
func (h GetDeclarationDetailQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationDetailQuery,
) (GetDeclarationDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}

	resp, err := h.fetchHeader(ctx, query)
	if err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}

	resp.Materials, err = h.fetchMaterials(ctx, query.DeclarationID())
	if err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDeclarationDetailQueryHandler) fetchHeader(
	ctx context.Context,
	query GetDeclarationDetailQuery,
) (GetDeclarationDetailQueryResponse, error) {
	headerSQL := `
		SELECT
			declarations.id,
			declarations.request_id,
			declaration_requests.purchase_order_id,
			purchase_orders.order_number,
			declarations.ship_id,
			ships.name,
			declarations.supplier_id,
			suppliers.company_name,
			declarations.declaration_number,
			declarations.title,
			declarations.declaration_type,
			declarations.item_name,
			declarations.manufacturer,
			declarations.model_number,
			declarations.compliance_status,
			declarations.certification_number,
			declarations.supplier_signature,
			declarations.supplier_name,
			declarations.signature_date,
			declarations.submitted_date,
			declarations.approved_date,
			declarations.status,
			declarations.rejection_reason
		FROM declarations
		JOIN ships ON ships.id = declarations.ship_id
		JOIN suppliers ON suppliers.id = declarations.supplier_id
		JOIN declaration_requests ON declaration_requests.id = declarations.request_id
		JOIN purchase_orders ON purchase_orders.id = declaration_requests.purchase_order_id
		WHERE declarations.id = ?`
	args := []any{query.DeclarationID().String()}

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, declarationSupplierScopeSQL,
	); predicate != "" {
		headerSQL += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}

	var resp GetDeclarationDetailQueryResponse
	var id, requestID, purchaseOrderID, shipID, supplierID uuid.UUID

	row := h.db.WithContext(ctx).Raw(headerSQL, args...).Row()
	err := row.Scan(
		&id,
		&requestID,
		&purchaseOrderID,
		&resp.OrderNumber,
		&shipID,
		&resp.ShipName,
		&supplierID,
		&resp.SupplierCompany,
		&resp.DeclarationNumber,
		&resp.Title,
		&resp.DeclarationType,
		&resp.ItemName,
		&resp.Manufacturer,
		&resp.ModelNumber,
		&resp.ComplianceStatus,
		&resp.CertificationNumber,
		&resp.SupplierSignature,
		&resp.SupplierName,
		&resp.SignatureDate,
		&resp.SubmittedDate,
		&resp.ApprovedDate,
		&resp.Status,
		&resp.RejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeclarationDetailQueryResponse{}, errs.NewObjectNotFoundError(
			"declarationID", query.DeclarationID(),
		)
	}
	if err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}
	if resp.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}
	if resp.PurchaseOrderID, err = kernel.UUIDFromBytes(purchaseOrderID[:]); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}
	if resp.ShipID, err = kernel.UUIDFromBytes(shipID[:]); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}
	if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return GetDeclarationDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDeclarationDetailQueryHandler) fetchMaterials(
	ctx context.Context,
	declarationID kernel.UUID,
) ([]DeclarationMaterialResponse, error) {
	materials := make([]DeclarationMaterialResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			material_name,
			cas_number,
			content_percentage,
			location_in_product,
			remarks
		FROM hazardous_materials
		WHERE declaration_id = ?
		ORDER BY seq
	`, declarationID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var material DeclarationMaterialResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&material.MaterialName,
			&material.CASNumber,
			&material.ContentPercentage,
			&material.LocationInProduct,
			&material.Remarks,
		)
		if err != nil {
			return nil, err
		}

		if material.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		materials = append(materials, material)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
