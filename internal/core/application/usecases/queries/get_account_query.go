package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves the profile of one user account, used for the
// authenticated "who am I" view.
type GetAccountQuery struct {
	userID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetAccountQuery creates a query for the given user's account.
func NewGetAccountQuery(userID kernel.UUID) (GetAccountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// UserID returns the account to fetch.
func (q GetAccountQuery) UserID() kernel.UUID {
	return q.userID
}

// GetAccountQueryResponse is the account view without credentials.
type GetAccountQueryResponse struct {
	ID           kernel.UUID
	Username     string
	Email        string
	Role         string
	CompanyName  string
	ContactPhone string
	IsActive     bool
	CreatedAt    time.Time
}
