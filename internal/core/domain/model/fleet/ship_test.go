package fleet_test

import (
	"testing"
	"time"

	"ihm/internal/core/domain/model/fleet"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShip(t *testing.T) {
	t.Run("should create active ship with valid params", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		ship, err := fleet.NewShip(id, customerID, "MV Pacific Dawn", "IMO 9074729")

		require.NoError(t, err)
		require.NoError(t, ship.Validate())
		assert.Equal(t, id, ship.ID())
		assert.Equal(t, customerID, ship.CustomerID())
		assert.Equal(t, "MV Pacific Dawn", ship.Name())
		assert.Equal(t, "IMO 9074729", ship.IMONumber())
		assert.True(t, ship.IsActive())
		assert.Empty(t, ship.ShipType())
		assert.Zero(t, ship.GrossTonnage())
		assert.Zero(t, ship.YearBuilt())
	})

	t.Run("should return error with invalid id", func(t *testing.T) {
		_, err := fleet.NewShip(kernel.UUID{}, kernel.NewUUID(), "MV Pacific Dawn", "IMO 9074729")

		require.Error(t, err)
	})

	t.Run("should return error with invalid customer id", func(t *testing.T) {
		_, err := fleet.NewShip(kernel.NewUUID(), kernel.UUID{}, "MV Pacific Dawn", "IMO 9074729")

		require.Error(t, err)
	})

	t.Run("should return error with empty name", func(t *testing.T) {
		_, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "", "IMO 9074729")

		require.Error(t, err)
	})

	t.Run("should return error with empty imo number", func(t *testing.T) {
		_, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "MV Pacific Dawn", "")

		require.Error(t, err)
	})
}

func TestShip_Validate(t *testing.T) {
	t.Run("should return error when not constructed", func(t *testing.T) {
		var ship fleet.Ship

		assert.ErrorIs(t, ship.Validate(), fleet.ErrShipIsNotConstructed)
	})

	t.Run("should return error for nil ship", func(t *testing.T) {
		var ship *fleet.Ship

		assert.ErrorIs(t, ship.Validate(), fleet.ErrShipIsNotConstructed)
	})
}

func TestShip_SetParticulars(t *testing.T) {
	ship, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "MV Pacific Dawn", "IMO 9074729")
	require.NoError(t, err)

	ship.SetParticulars("Bulk Carrier", 52000.5, 2014)

	assert.Equal(t, "Bulk Carrier", ship.ShipType())
	assert.InDelta(t, 52000.5, ship.GrossTonnage(), 0.001)
	assert.Equal(t, 2014, ship.YearBuilt())
}

func TestShip_Rename(t *testing.T) {
	t.Run("should change the name keeping the imo number", func(t *testing.T) {
		ship, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "MV Pacific Dawn", "IMO 9074729")
		require.NoError(t, err)

		require.NoError(t, ship.Rename("MV Pacific Horizon"))

		assert.Equal(t, "MV Pacific Horizon", ship.Name())
		assert.Equal(t, "IMO 9074729", ship.IMONumber())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		ship, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "MV Pacific Dawn", "IMO 9074729")
		require.NoError(t, err)

		err = ship.Rename("")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
		assert.Equal(t, "MV Pacific Dawn", ship.Name())
	})
}

func TestShip_ActivateDeactivate(t *testing.T) {
	ship, err := fleet.NewShip(kernel.NewUUID(), kernel.NewUUID(), "MV Pacific Dawn", "IMO 9074729")
	require.NoError(t, err)

	ship.Deactivate()
	assert.False(t, ship.IsActive())

	ship.Activate()
	assert.True(t, ship.IsActive())
}

func TestRestoreShip(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		createdAt := time.Date(2023, 11, 2, 10, 0, 0, 0, time.UTC)

		ship, err := fleet.RestoreShip(
			kernel.NewUUID(), kernel.NewUUID(),
			"MV Pacific Dawn", "IMO 9074729", "Container Ship",
			48000, 2009, false, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "Container Ship", ship.ShipType())
		assert.InDelta(t, 48000.0, ship.GrossTonnage(), 0.001)
		assert.Equal(t, 2009, ship.YearBuilt())
		assert.False(t, ship.IsActive())
		assert.Equal(t, createdAt, ship.CreatedAt())
	})
}
