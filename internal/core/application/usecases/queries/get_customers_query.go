package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves the customer directory. Customers see only
// their own profile; suppliers and operators see every customer.
type GetCustomersQuery struct {
	actor services.Actor

	guard kernel.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list customer profiles.
func NewGetCustomersQuery(actor services.Actor) (GetCustomersQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetCustomersQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	return GetCustomersQuery{
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetCustomersQuery) Actor() services.Actor {
	return q.actor
}

// GetCustomersQueryResponse is one customer directory row.
type GetCustomersQueryResponse struct {
	ID             kernel.UUID
	CompanyName    string
	BusinessNumber string
	Address        string
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}
