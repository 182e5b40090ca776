package queries_test

import (
	"testing"

	"ihm/internal/core/application/usecases/queries"
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomersQuery_Valid(t *testing.T) {
	actor := services.Actor{UserID: kernel.NewUUID(), Role: account.RoleSupplier}

	query, err := queries.NewGetCustomersQuery(actor)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
}

func TestNewGetCustomersQuery_InvalidActor_ReturnsError(t *testing.T) {
	_, err := queries.NewGetCustomersQuery(services.Actor{})

	require.Error(t, err)
}

func TestGetCustomersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomersQueryIsNotConstructed)
}
