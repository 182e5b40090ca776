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

// GetCredentialsQueryHandler retrieves stored credentials by username.
type GetCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetCredentialsQueryHandler creates a handler for credential lookups.
func NewGetCredentialsQueryHandler(db *gorm.DB) GetCredentialsQueryHandler {
	return GetCredentialsQueryHandler{db: db}
}

// Handle executes the lookup. An unknown username answers not-found; the
// caller folds that into a generic invalid-credentials response.
func (h GetCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetCredentialsQuery,
) (GetCredentialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	var resp GetCredentialsQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			password_hash,
			role,
			is_active
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(
		&id,
		&resp.PasswordHash,
		&resp.Role,
		&resp.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCredentialsQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
	}
	if err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	if resp.UserID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	return resp, nil
}
