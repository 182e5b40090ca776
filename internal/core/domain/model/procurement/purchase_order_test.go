package procurement_test

import (
	"testing"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(t *testing.T) *procurement.PurchaseOrder {
	t.Helper()

	po, err := procurement.NewPurchaseOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"PO-2024-001", "Engine room piping",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	return po
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		shipID := kernel.NewUUID()
		createdBy := kernel.NewUUID()
		orderDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		po, err := procurement.NewPurchaseOrder(id, shipID, "PO-2024-001", "Engine room piping", orderDate, createdBy)

		require.NoError(t, err)
		require.NoError(t, po.Validate())
		assert.True(t, po.ID().IsEqual(id))
		assert.True(t, po.ShipID().IsEqual(shipID))
		assert.Equal(t, "PO-2024-001", po.OrderNumber())
		assert.Equal(t, "Engine room piping", po.Title())
		assert.Equal(t, orderDate, po.OrderDate())
		assert.Equal(t, procurement.StatusPending, po.Status())
		assert.True(t, po.CreatedBy().IsEqual(createdBy))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		po, err := procurement.NewPurchaseOrder(
			invalidID, kernel.NewUUID(), "PO-1", "Title", time.Now(), kernel.NewUUID(),
		)

		require.Error(t, err)
		assert.Nil(t, po)
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		po, err := procurement.NewPurchaseOrder(
			kernel.NewUUID(), kernel.NewUUID(), "", "Title", time.Now(), kernel.NewUUID(),
		)

		require.Error(t, err)
		assert.Nil(t, po)
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		po, err := procurement.NewPurchaseOrder(
			kernel.NewUUID(), kernel.NewUUID(), "PO-1", "", time.Now(), kernel.NewUUID(),
		)

		require.Error(t, err)
		assert.Nil(t, po)
	})
}

func TestPurchaseOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var po procurement.PurchaseOrder

		require.ErrorIs(t, po.Validate(), procurement.ErrPurchaseOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var po *procurement.PurchaseOrder

		require.ErrorIs(t, po.Validate(), procurement.ErrPurchaseOrderIsNotConstructed)
	})
}

func TestPurchaseOrder_SetItemDetails(t *testing.T) {
	po := validOrder(t)

	po.SetItemDetails("Ballast pump", "Centrifugal, 200 m3/h", 2, "pcs")

	assert.Equal(t, "Ballast pump", po.ItemName())
	assert.Equal(t, "Centrifugal, 200 m3/h", po.ItemDescription())
	assert.InDelta(t, 2.0, po.Quantity(), 0.0001)
	assert.Equal(t, "pcs", po.Unit())
}

func TestPurchaseOrder_Lifecycle(t *testing.T) {
	t.Run("should walk pending through requested to completed", func(t *testing.T) {
		po := validOrder(t)

		require.NoError(t, po.MarkRequested())
		assert.Equal(t, procurement.StatusRequested, po.Status())

		require.NoError(t, po.MarkCompleted())
		assert.Equal(t, procurement.StatusCompleted, po.Status())
	})

	t.Run("should conflict on double request", func(t *testing.T) {
		po := validOrder(t)
		require.NoError(t, po.MarkRequested())

		err := po.MarkRequested()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should conflict on completing a pending order", func(t *testing.T) {
		po := validOrder(t)

		err := po.MarkCompleted()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})

	t.Run("should conflict on completing twice", func(t *testing.T) {
		po := validOrder(t)
		require.NoError(t, po.MarkRequested())
		require.NoError(t, po.MarkCompleted())

		err := po.MarkCompleted()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})
}
