package queries

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves customer directory rows from the
// database. Customers are restricted to their own profile in SQL.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer directory
// queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by company name for
// stable output.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
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
		FROM customers
		WHERE 1 = 1`
	args := make([]any, 0, 1)

	if query.Actor().Role == account.RoleCustomer {
		sql += "\n\t\tAND user_id = ?"
		args = append(args, query.Actor().UserID.String())
	}
	sql += "\n\t\tORDER BY company_name, id"

	customers := make([]GetCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomersQueryResponse
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

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
