package queries

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

var ErrGetCredentialsQueryIsNotConstructed = errors.New(
	"GetCredentialsQuery must be created via NewGetCredentialsQuery constructor",
)

// GetCredentialsQuery retrieves the stored credentials for a username.
// Only the login flow uses this; every other account read goes through
// GetAccountQuery, which never exposes the password hash.
type GetCredentialsQuery struct {
	username string

	guard kernel.ConstructorGuard
}

// NewGetCredentialsQuery creates a credentials lookup for the given
// username.
func NewGetCredentialsQuery(username string) (GetCredentialsQuery, error) {
	if username == "" {
		return GetCredentialsQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetCredentialsQuery{
		username: username,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetCredentialsQueryIsNotConstructed)
}

// Username returns the login name to look up.
func (q GetCredentialsQuery) Username() string {
	return q.username
}

// GetCredentialsQueryResponse carries what the login flow needs to verify
// a password and mint a token.
type GetCredentialsQueryResponse struct {
	UserID       kernel.UUID
	PasswordHash string
	Role         string
	IsActive     bool
}
