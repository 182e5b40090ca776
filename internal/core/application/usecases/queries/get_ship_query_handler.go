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

// GetShipQueryHandler retrieves one ship row, joined with the owning
// customer's company name.
type GetShipQueryHandler struct {
	db *gorm.DB
}

// NewGetShipQueryHandler creates a handler for single-ship queries.
func NewGetShipQueryHandler(db *gorm.DB) GetShipQueryHandler {
	return GetShipQueryHandler{db: db}
}

// Handle executes the query. Ships outside the actor's visibility come
// back as not-found, the same as absent ids.
func (h GetShipQueryHandler) Handle(
	ctx context.Context,
	query GetShipQuery,
) (GetShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipsQueryResponse{}, err
	}

	shipSQL := `
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
		WHERE ships.id = ?`
	args := []any{query.ShipID().String()}

	if predicate, predicateArgs := scopePredicate(
		query.Actor(), shipCustomerScopeSQL, noVisibilitySQL,
	); predicate != "" {
		shipSQL += "\n\t\tAND " + predicate
		args = append(args, predicateArgs...)
	}

	var resp GetShipsQueryResponse
	var id, customerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(shipSQL, args...).Row()
	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipsQueryResponse{}, errs.NewObjectNotFoundError("shipID", query.ShipID())
	}
	if err != nil {
		return GetShipsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetShipsQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetShipsQueryResponse{}, err
	}

	return resp, nil
}
