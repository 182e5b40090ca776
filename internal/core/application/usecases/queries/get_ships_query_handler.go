package queries

import (
	"context"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipsQueryHandler retrieves ship rows from the database, joined with
// the owning customer's company name.
type GetShipsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetShipsQueryHandler creates a handler for ship listing queries.
func NewGetShipsQueryHandler(db *gorm.DB) GetShipsQueryHandler {
	return GetShipsQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. Results are sorted by ship name for stable
// output. The self-scoped my-ships listing is gated on the customer
// capability; other roles get an authorization error.
func (h GetShipsQueryHandler) Handle(
	ctx context.Context,
	query GetShipsQuery,
) ([]GetShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.SelfScoped() {
		if err := h.policy.Authorize(query.Actor().Role, services.ActionListMyShips); err != nil {
			return nil, err
		}
	}

	sql := `
		SELECT
			ships.id,
			ships.customer_id,
			customers.company_name,
			ships.name,
			ships.imo_number,
			ships.ship_type,
			ships.gross_tonnage,
			ships.year_built,
			ships.is_active,
			ships.created_at
		FROM ships
		JOIN customers ON customers.id = ships.customer_id
		WHERE 1 = 1`
	args := make([]any, 0, 3)

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, noVisibilitySQL,
	); predicate != "" {
		sql += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}
	if query.CustomerID() != nil {
		sql += "\n\t\tAND ships.customer_id = ?"
		args = append(args, query.CustomerID().String())
	}
	if query.IsActive() != nil {
		sql += "\n\t\tAND ships.is_active = ?"
		args = append(args, *query.IsActive())
	}
	sql += "\n\t\tORDER BY ships.name, ships.id"

	ships := make([]GetShipsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipsQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&resp.CustomerCompany,
			&resp.Name,
			&resp.IMONumber,
			&resp.ShipType,
			&resp.GrossTonnage,
			&resp.YearBuilt,
			&resp.IsActive,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		ships = append(ships, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ships, nil
}
