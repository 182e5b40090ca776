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

func TestNewGetSuppliersQuery_Valid(t *testing.T) {
	actor := services.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}

	query, err := queries.NewGetSuppliersQuery(actor)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
}

func TestNewGetSuppliersQuery_InvalidActor_ReturnsError(t *testing.T) {
	_, err := queries.NewGetSuppliersQuery(services.Actor{})

	require.Error(t, err)
}

func TestGetSuppliersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSuppliersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSuppliersQueryIsNotConstructed)
}
