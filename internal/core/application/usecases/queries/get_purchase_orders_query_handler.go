package queries

import (
	"context"

	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrdersQueryHandler retrieves purchase order rows from the
// database with the actor's visibility applied in SQL.
type GetPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrdersQueryHandler creates a handler for purchase order
// listing queries.
func NewGetPurchaseOrdersQueryHandler(db *gorm.DB) GetPurchaseOrdersQueryHandler {
	return GetPurchaseOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order date, newest
// first.
func (h GetPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersQuery,
) ([]GetPurchaseOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			purchase_orders.id,
			purchase_orders.ship_id,
			ships.name,
			purchase_orders.order_number,
			purchase_orders.title,
			purchase_orders.item_name,
			purchase_orders.quantity,
			purchase_orders.unit,
			purchase_orders.order_date,
			purchase_orders.delivery_date,
			purchase_orders.status
		FROM purchase_orders
		JOIN ships ON ships.id = purchase_orders.ship_id
		WHERE 1 = 1`
	args := make([]any, 0, 3)

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, orderSupplierScopeSQL,
	); predicate != "" {
		sql += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}
	if query.Status() != nil {
		sql += "\n\t\tAND purchase_orders.status = ?"
		args = append(args, query.Status().String())
	}
	if query.ShipID() != nil {
		sql += "\n\t\tAND purchase_orders.ship_id = ?"
		args = append(args, query.ShipID().String())
	}
	sql += "\n\t\tORDER BY purchase_orders.order_date DESC, purchase_orders.id"

	orders := make([]GetPurchaseOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPurchaseOrdersQueryResponse
		var id, shipID uuid.UUID

		err = rows.Scan(
			&id,
			&shipID,
			&resp.ShipName,
			&resp.OrderNumber,
			&resp.Title,
			&resp.ItemName,
			&resp.Quantity,
			&resp.Unit,
			&resp.OrderDate,
			&resp.DeliveryDate,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ShipID, err = kernel.UUIDFromBytes(shipID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
