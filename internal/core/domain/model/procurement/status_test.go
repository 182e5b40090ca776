package procurement_test

import (
	"fmt"
	"testing"

	"ihm/internal/core/domain/model/procurement"
	"ihm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(procurement.StatusUnknown))
		assert.Equal(t, 1, int(procurement.StatusPending))
		assert.Equal(t, 2, int(procurement.StatusRequested))
		assert.Equal(t, 3, int(procurement.StatusCompleted))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []procurement.Status{
			procurement.StatusPending,
			procurement.StatusRequested,
			procurement.StatusCompleted,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown and out-of-range statuses", func(t *testing.T) {
		invalidStatuses := []procurement.Status{
			procurement.StatusUnknown,
			procurement.Status(-1),
			procurement.Status(4),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   procurement.Status
		expected string
	}{
		{procurement.StatusUnknown, "unknown"},
		{procurement.StatusPending, "pending"},
		{procurement.StatusRequested, "requested"},
		{procurement.StatusCompleted, "completed"},
		{procurement.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %q", tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		for _, name := range []string{"pending", "requested", "completed"} {
			status, err := procurement.ParseStatus(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "PENDING", "done"} {
			_, err := procurement.ParseStatus(name)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_Request(t *testing.T) {
	t.Run("should move pending to requested", func(t *testing.T) {
		next, err := procurement.StatusPending.Request()

		require.NoError(t, err)
		assert.Equal(t, procurement.StatusRequested, next)
	})

	t.Run("should conflict for any other status", func(t *testing.T) {
		for _, status := range []procurement.Status{
			procurement.StatusRequested,
			procurement.StatusCompleted,
			procurement.StatusUnknown,
		} {
			_, err := status.Request()

			require.Error(t, err)
			assert.IsType(t, &errs.ConflictError{}, err)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should move requested to completed", func(t *testing.T) {
		next, err := procurement.StatusRequested.Complete()

		require.NoError(t, err)
		assert.Equal(t, procurement.StatusCompleted, next)
	})

	t.Run("should conflict for any other status", func(t *testing.T) {
		for _, status := range []procurement.Status{
			procurement.StatusPending,
			procurement.StatusCompleted,
			procurement.StatusUnknown,
		} {
			_, err := status.Complete()

			require.Error(t, err)
			assert.IsType(t, &errs.ConflictError{}, err)
		}
	})
}
