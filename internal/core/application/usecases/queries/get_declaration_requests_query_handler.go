package queries

import (
	"context"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeclarationRequestsQueryHandler retrieves declaration request rows
// from the database with the actor's visibility applied in SQL.
type GetDeclarationRequestsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetDeclarationRequestsQueryHandler creates a handler for declaration
// request listing queries.
func NewGetDeclarationRequestsQueryHandler(db *gorm.DB) GetDeclarationRequestsQueryHandler {
	return GetDeclarationRequestsQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Results are sorted by request date, newest
// first. The self-scoped pending queue is gated on the supplier
// capability; other roles get an authorization error.
func (h GetDeclarationRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationRequestsQuery,
) ([]GetDeclarationRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.SelfScoped() {
		if err := h.policy.Authorize(query.Actor().Role, services.ActionListPendingRequests); err != nil {
			return nil, err
		}
	}

	sql := `
		SELECT
			declaration_requests.id,
			declaration_requests.purchase_order_id,
			purchase_orders.order_number,
			purchase_orders.title,
			ships.name,
			declaration_requests.supplier_id,
			suppliers.company_name,
			declaration_requests.request_date,
			declaration_requests.due_date,
			declaration_requests.status,
			declaration_requests.rejection_reason
		FROM declaration_requests
		JOIN purchase_orders ON purchase_orders.id = declaration_requests.purchase_order_id
		JOIN ships ON ships.id = purchase_orders.ship_id
		JOIN suppliers ON suppliers.id = declaration_requests.supplier_id
		WHERE 1 = 1`
	args := make([]any, 0, 2)

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, requestSupplierScopeSQL,
	); predicate != "" {
		sql += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}
	if query.Status() != nil {
		sql += "\n\t\tAND declaration_requests.status = ?"
		args = append(args, query.Status().String())
	}
	sql += "\n\t\tORDER BY declaration_requests.request_date DESC, declaration_requests.id"

	requests := make([]GetDeclarationRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeclarationRequestsQueryResponse
		var id, purchaseOrderID, supplierID uuid.UUID

		err = rows.Scan(
			&id,
			&purchaseOrderID,
			&resp.OrderNumber,
			&resp.OrderTitle,
			&resp.ShipName,
			&supplierID,
			&resp.SupplierCompany,
			&resp.RequestDate,
			&resp.DueDate,
			&resp.Status,
			&resp.RejectionReason,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PurchaseOrderID, err = kernel.UUIDFromBytes(purchaseOrderID[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
