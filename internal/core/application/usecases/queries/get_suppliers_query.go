package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetSuppliersQueryIsNotConstructed = errors.New(
	"GetSuppliersQuery must be created via NewGetSuppliersQuery constructor",
)

// GetSuppliersQuery retrieves the supplier directory. Suppliers see only
// their own profile; customers and operators see every supplier, which is
// how a customer finds the supplier to name on a declaration request.
type GetSuppliersQuery struct {
	actor services.Actor

	guard kernel.ConstructorGuard
}

// NewGetSuppliersQuery creates a query to list supplier profiles.
func NewGetSuppliersQuery(actor services.Actor) (GetSuppliersQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetSuppliersQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	return GetSuppliersQuery{
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetSuppliersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetSuppliersQuery) Actor() services.Actor {
	return q.actor
}

// GetSuppliersQueryResponse is one supplier directory row.
type GetSuppliersQueryResponse struct {
	ID             kernel.UUID
	CompanyName    string
	BusinessNumber string
	Address        string
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}
