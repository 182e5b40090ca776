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

// GetAccountQueryHandler retrieves one user account row from the database.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account queries.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	var resp GetAccountQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			company_name,
			contact_phone,
			is_active,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Row()

	err := row.Scan(
		&id,
		&resp.Username,
		&resp.Email,
		&resp.Role,
		&resp.CompanyName,
		&resp.ContactPhone,
		&resp.IsActive,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAccountQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return GetAccountQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAccountQueryResponse{}, err
	}

	return resp, nil
}
