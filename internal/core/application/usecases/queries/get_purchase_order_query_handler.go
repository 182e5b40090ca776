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

// GetPurchaseOrderQueryHandler retrieves one purchase order row with its
// ship name.
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for single purchase
// order queries.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the query. Orders outside the actor's visibility come
// back as not-found, the same as absent ids.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	orderSQL := `
		SELECT
			purchase_orders.id,
			purchase_orders.ship_id,
			ships.name,
			purchase_orders.order_number,
			purchase_orders.title,
			purchase_orders.description,
			purchase_orders.item_name,
			purchase_orders.item_description,
			purchase_orders.quantity,
			purchase_orders.unit,
			purchase_orders.order_date,
			purchase_orders.delivery_date,
			purchase_orders.status,
			purchase_orders.created_at
		FROM purchase_orders
		JOIN ships ON ships.id = purchase_orders.ship_id
		WHERE purchase_orders.id = ?`
	args := []any{query.OrderID().String()}

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, orderSupplierScopeSQL,
	); predicate != "" {
		orderSQL += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}

	var resp GetPurchaseOrderQueryResponse
	var id, shipID uuid.UUID

	row := h.db.WithContext(ctx).Raw(orderSQL, args...).Row()
	err := row.Scan(
		&id,
		&shipID,
		&resp.ShipName,
		&resp.OrderNumber,
		&resp.Title,
		&resp.Description,
		&resp.ItemName,
		&resp.ItemDescription,
		&resp.Quantity,
		&resp.Unit,
		&resp.OrderDate,
		&resp.DeliveryDate,
		&resp.Status,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPurchaseOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	if resp.ShipID, err = kernel.UUIDFromBytes(shipID[:]); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	return resp, nil
}
