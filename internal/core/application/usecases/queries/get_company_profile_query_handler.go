package queries

import (
	"context"
	"database/sql"
	"errors"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyProfileQueryHandler retrieves the actor's company profile from
// the customers or suppliers table depending on their role.
type GetCompanyProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyProfileQueryHandler creates a handler for company profile
// queries.
func NewGetCompanyProfileQueryHandler(db *gorm.DB) GetCompanyProfileQueryHandler {
	return GetCompanyProfileQueryHandler{db: db}
}

// Handle executes the query. Actors without a linked profile, operators
// included, get a not-found error.
func (h GetCompanyProfileQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyProfileQuery,
) (GetCompanyProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyProfileQueryResponse{}, err
	}

	var table string
	switch query.Actor().Role {
	case account.RoleCustomer:
		table = "customers"
	case account.RoleSupplier:
		table = "suppliers"
	default:
		return GetCompanyProfileQueryResponse{}, errs.NewObjectNotFoundError(
			"userID", query.Actor().UserID,
		)
	}

	var resp GetCompanyProfileQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			company_name,
			business_number,
			address,
			contact_person,
			contact_phone,
			contact_email,
			created_at
		FROM `+table+`
		WHERE user_id = ?
	`, query.Actor().UserID.String()).Row()

	err := row.Scan(
		&id,
		&resp.CompanyName,
		&resp.BusinessNumber,
		&resp.Address,
		&resp.ContactPerson,
		&resp.ContactPhone,
		&resp.ContactEmail,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCompanyProfileQueryResponse{}, errs.NewObjectNotFoundError(
			"userID", query.Actor().UserID,
		)
	}
	if err != nil {
		return GetCompanyProfileQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetCompanyProfileQueryResponse{}, err
	}
	resp.ProfileRole = query.Actor().Role

	return resp, nil
}
