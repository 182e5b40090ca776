package queries

import (
	"context"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeclarationsQueryHandler retrieves declaration rows from the database
// with the actor's visibility applied in SQL.
type GetDeclarationsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetDeclarationsQueryHandler creates a handler for declaration listing
// queries.
func NewGetDeclarationsQueryHandler(db *gorm.DB) GetDeclarationsQueryHandler {
	return GetDeclarationsQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Results are sorted by submission date, newest
// first, with unsubmitted drafts last. The self-scoped
// my-ship-declarations view is gated on the customer capability; other
// roles get an authorization error.
func (h GetDeclarationsQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationsQuery,
) ([]GetDeclarationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.SelfScoped() {
		if err := h.policy.Authorize(query.Actor().Role, services.ActionListMyShipDeclarations); err != nil {
			return nil, err
		}
	}

	sql := `
		SELECT
			declarations.id,
			declarations.request_id,
			declarations.ship_id,
			ships.name,
			purchase_orders.order_number,
			suppliers.company_name,
			declarations.declaration_number,
			declarations.title,
			declarations.declaration_type,
			declarations.compliance_status,
			declarations.status,
			declarations.submitted_date,
			declarations.approved_date
		FROM declarations
		JOIN ships ON ships.id = declarations.ship_id
		JOIN suppliers ON suppliers.id = declarations.supplier_id
		JOIN declaration_requests ON declaration_requests.id = declarations.request_id
		JOIN purchase_orders ON purchase_orders.id = declaration_requests.purchase_order_id
		WHERE 1 = 1`
	args := make([]any, 0, 4)

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, declarationSupplierScopeSQL,
	); predicate != "" {
		sql += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}
	if query.Status() != nil {
		sql += "\n\t\tAND declarations.status = ?"
		args = append(args, query.Status().String())
	}
	if query.DeclarationType() != nil {
		sql += "\n\t\tAND declarations.declaration_type = ?"
		args = append(args, query.DeclarationType().String())
	}
	if query.ShipID() != nil {
		sql += "\n\t\tAND declarations.ship_id = ?"
		args = append(args, query.ShipID().String())
	}
	sql += "\n\t\tORDER BY declarations.submitted_date DESC NULLS LAST, declarations.id"

	declarations := make([]GetDeclarationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeclarationsQueryResponse
		var id, requestID, shipID uuid.UUID

		err = rows.Scan(
			&id,
			&requestID,
			&shipID,
			&resp.ShipName,
			&resp.OrderNumber,
			&resp.SupplierCompany,
			&resp.DeclarationNumber,
			&resp.Title,
			&resp.DeclarationType,
			&resp.ComplianceStatus,
			&resp.Status,
			&resp.SubmittedDate,
			&resp.ApprovedDate,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
			return nil, err
		}
		if resp.ShipID, err = kernel.UUIDFromBytes(shipID[:]); err != nil {
			return nil, err
		}

		declarations = append(declarations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return declarations, nil
}
