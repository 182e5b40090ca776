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

func TestNewGetShipQuery_Valid(t *testing.T) {
	actor := services.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}
	shipID := kernel.NewUUID()

	query, err := queries.NewGetShipQuery(actor, shipID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
	assert.Equal(t, shipID, query.ShipID())
}

func TestNewGetShipQuery_EmptyShipID_ReturnsError(t *testing.T) {
	actor := services.Actor{UserID: kernel.NewUUID(), Role: account.RoleCustomer}

	_, err := queries.NewGetShipQuery(actor, kernel.UUID{})

	require.Error(t, err)
}

func TestNewGetShipQuery_InvalidActor_ReturnsError(t *testing.T) {
	_, err := queries.NewGetShipQuery(services.Actor{}, kernel.NewUUID())

	require.Error(t, err)
}

func TestGetShipQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipQueryIsNotConstructed)
}
