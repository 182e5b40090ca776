package declaration_test

import (
	"testing"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest(t *testing.T) *declaration.Request {
	t.Helper()

	request, err := declaration.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID())
	require.NoError(t, err)
	return request
}

func TestNewRequest(t *testing.T) {
	t.Run("should create pending request with valid params", func(t *testing.T) {
		id := kernel.NewUUID()
		purchaseOrderID := kernel.NewUUID()
		supplierID := kernel.NewUUID()
		createdBy := kernel.NewUUID()
		dueDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

		request, err := declaration.NewRequest(id, purchaseOrderID, supplierID, &dueDate, createdBy)

		require.NoError(t, err)
		require.NoError(t, request.Validate())
		assert.Equal(t, id, request.ID())
		assert.Equal(t, purchaseOrderID, request.PurchaseOrderID())
		assert.Equal(t, supplierID, request.SupplierID())
		assert.Equal(t, createdBy, request.CreatedBy())
		assert.Equal(t, declaration.RequestStatusPending, request.Status())
		require.NotNil(t, request.DueDate())
		assert.Equal(t, dueDate, *request.DueDate())
		assert.Empty(t, request.RejectionReason())
	})

	t.Run("should allow nil due date", func(t *testing.T) {
		request := pendingRequest(t)

		assert.Nil(t, request.DueDate())
	})

	t.Run("should return error with invalid references", func(t *testing.T) {
		_, err := declaration.NewRequest(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID())
		require.Error(t, err)

		_, err = declaration.NewRequest(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), nil, kernel.NewUUID())
		require.Error(t, err)

		_, err = declaration.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, nil, kernel.NewUUID())
		require.Error(t, err)

		_, err = declaration.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRequest_Validate(t *testing.T) {
	t.Run("should return error when not constructed", func(t *testing.T) {
		var request declaration.Request

		assert.ErrorIs(t, request.Validate(), declaration.ErrRequestIsNotConstructed)
	})

	t.Run("should return error for nil request", func(t *testing.T) {
		var request *declaration.Request

		assert.ErrorIs(t, request.Validate(), declaration.ErrRequestIsNotConstructed)
	})
}

func TestRestoreRequest(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		requestDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		createdAt := requestDate.Add(time.Minute)

		request, err := declaration.RestoreRequest(
			id, kernel.NewUUID(), kernel.NewUUID(),
			requestDate, nil,
			declaration.RequestStatusRejected, "missing CAS numbers",
			kernel.NewUUID(), createdAt)

		require.NoError(t, err)
		assert.Equal(t, declaration.RequestStatusRejected, request.Status())
		assert.Equal(t, "missing CAS numbers", request.RejectionReason())
		assert.Equal(t, requestDate, request.RequestDate())
		assert.Equal(t, createdAt, request.CreatedAt())
	})

	t.Run("should return error for invalid status", func(t *testing.T) {
		_, err := declaration.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().UTC(), nil,
			declaration.RequestStatusUnknown, "",
			kernel.NewUUID(), time.Now().UTC())

		require.Error(t, err)
	})
}

func TestRequest_MarkSubmitted(t *testing.T) {
	t.Run("should move pending request to submitted", func(t *testing.T) {
		request := pendingRequest(t)

		require.NoError(t, request.MarkSubmitted())
		assert.Equal(t, declaration.RequestStatusSubmitted, request.Status())
	})

	t.Run("should clear rejection reason on resubmission", func(t *testing.T) {
		request := pendingRequest(t)
		require.NoError(t, request.MarkSubmitted())
		require.NoError(t, request.Reject("incomplete declaration"))
		require.Equal(t, "incomplete declaration", request.RejectionReason())

		require.NoError(t, request.MarkSubmitted())

		assert.Equal(t, declaration.RequestStatusSubmitted, request.Status())
		assert.Empty(t, request.RejectionReason())
	})

	t.Run("should return conflict when already submitted", func(t *testing.T) {
		request := pendingRequest(t)
		require.NoError(t, request.MarkSubmitted())

		err := request.MarkSubmitted()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})
}

func TestRequest_ApproveReject(t *testing.T) {
	t.Run("should approve submitted request", func(t *testing.T) {
		request := pendingRequest(t)
		require.NoError(t, request.MarkSubmitted())

		require.NoError(t, request.Approve())
		assert.Equal(t, declaration.RequestStatusApproved, request.Status())
	})

	t.Run("should reject with stored reason", func(t *testing.T) {
		request := pendingRequest(t)
		require.NoError(t, request.MarkSubmitted())

		require.NoError(t, request.Reject("wrong supplier"))

		assert.Equal(t, declaration.RequestStatusRejected, request.Status())
		assert.Equal(t, "wrong supplier", request.RejectionReason())
	})

	t.Run("should return conflict when approving terminal request", func(t *testing.T) {
		request := pendingRequest(t)
		require.NoError(t, request.MarkSubmitted())
		require.NoError(t, request.Approve())

		err := request.Approve()

		require.Error(t, err)
		assert.IsType(t, &errs.ConflictError{}, err)
	})
}

func TestRequest_IsOverdue(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should be overdue when pending past due date", func(t *testing.T) {
		dueDate := now.Add(-24 * time.Hour)
		request, err := declaration.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &dueDate, kernel.NewUUID())
		require.NoError(t, err)

		assert.True(t, request.IsOverdue(now))
	})

	t.Run("should not be overdue without due date", func(t *testing.T) {
		request := pendingRequest(t)

		assert.False(t, request.IsOverdue(now))
	})

	t.Run("should not be overdue before due date", func(t *testing.T) {
		dueDate := now.Add(24 * time.Hour)
		request, err := declaration.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &dueDate, kernel.NewUUID())
		require.NoError(t, err)

		assert.False(t, request.IsOverdue(now))
	})

	t.Run("should not be overdue once submitted", func(t *testing.T) {
		dueDate := now.Add(-24 * time.Hour)
		request, err := declaration.NewRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &dueDate, kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, request.MarkSubmitted())

		assert.False(t, request.IsOverdue(now))
	})
}
