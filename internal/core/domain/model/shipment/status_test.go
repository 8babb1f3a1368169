package shipment_test

import (
	"testing"

	"frete/internal/core/domain/model/shipment"
	"frete/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   shipment.Status
		expected string
	}{
		{shipment.StatusUnknown, "UNKNOWN"},
		{shipment.StatusPending, "PENDING"},
		{shipment.StatusInTransit, "IN_TRANSIT"},
		{shipment.StatusDelivered, "DELIVERED"},
		{shipment.StatusCancelled, "CANCELLED"},
		{shipment.Status(99), "UNKNOWN"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for _, s := range []string{"PENDING", "IN_TRANSIT", "DELIVERED", "CANCELLED"} {
			status, err := shipment.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := shipment.StatusFromString("EM_TRANSITO")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, shipment.StatusPending.Validate())
	require.NoError(t, shipment.StatusCancelled.Validate())
	require.ErrorIs(t, shipment.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, shipment.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Accept(t *testing.T) {
	t.Run("pending becomes in transit", func(t *testing.T) {
		next, err := shipment.StatusPending.Accept()

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusInTransit, next)
	})

	t.Run("non-pending statuses cannot be accepted", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		} {
			_, err := s.Accept()

			require.ErrorIs(t, err, shipment.ErrInvalidStatus)
			assert.Contains(t, err.Error(), s.String(), "error must name the current status")
		}
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("pending must not have a driver", func(t *testing.T) {
		require.NoError(t, shipment.StatusPending.ValidateCanHaveDriver(false))
		require.Error(t, shipment.StatusPending.ValidateCanHaveDriver(true))
	})

	t.Run("claimed statuses require a driver", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		} {
			require.NoError(t, s.ValidateCanHaveDriver(true))
			require.Error(t, s.ValidateCanHaveDriver(false))
		}
	})
}
