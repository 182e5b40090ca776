package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetCompanyProfileQueryIsNotConstructed = errors.New(
	"GetCompanyProfileQuery must be created via NewGetCompanyProfileQuery constructor",
)

// GetCompanyProfileQuery retrieves the company profile linked to the
// actor's account: the customer profile for customers, the supplier
// profile for suppliers. Operators have no company profile.
type GetCompanyProfileQuery struct {
	actor services.Actor

	guard kernel.ConstructorGuard
}

// NewGetCompanyProfileQuery creates a query for the actor's own company
// profile.
func NewGetCompanyProfileQuery(actor services.Actor) (GetCompanyProfileQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetCompanyProfileQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	return GetCompanyProfileQuery{
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyProfileQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetCompanyProfileQuery) Actor() services.Actor {
	return q.actor
}

// GetCompanyProfileQueryResponse is one company profile row. ProfileRole
// says which side of the workflow the company sits on.
type GetCompanyProfileQueryResponse struct {
	ID             kernel.UUID
	ProfileRole    account.Role
	CompanyName    string
	BusinessNumber string
	Address        string
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}
