package queries

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSuppliersQueryHandler retrieves supplier directory rows from the
// database. Suppliers are restricted to their own profile in SQL.
type GetSuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetSuppliersQueryHandler creates a handler for supplier directory
// queries.
func NewGetSuppliersQueryHandler(db *gorm.DB) GetSuppliersQueryHandler {
	return GetSuppliersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by company name for
// stable output.
func (h GetSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetSuppliersQuery,
) ([]GetSuppliersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			company_name,
			business_number,
			address,
			contact_person,
			contact_phone,
			contact_email,
			created_at
		FROM suppliers
		WHERE 1 = 1`
	args := make([]any, 0, 1)

	if query.Actor().Role == account.RoleSupplier {
		sql += "\n\t\tAND user_id = ?"
		args = append(args, query.Actor().UserID.String())
	}
	sql += "\n\t\tORDER BY company_name, id"

	suppliers := make([]GetSuppliersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSuppliersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.CompanyName,
			&resp.BusinessNumber,
			&resp.Address,
			&resp.ContactPerson,
			&resp.ContactPhone,
			&resp.ContactEmail,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
