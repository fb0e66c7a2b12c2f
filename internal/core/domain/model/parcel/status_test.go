package parcel_test

import (
	"testing"

	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryStatus(t *testing.T) {
	t.Run("should accept every stored status and marker by raw value", func(t *testing.T) {
		for _, raw := range []string{
			"created", "pending-pickup", "driver_assigned", "rider_arriving",
			"parcel_delivered", "parcel_created", "parcel_paid",
		} {
			s, err := parcel.ParseDeliveryStatus(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, raw, s.String())
		}
	})

	t.Run("should reject empty status as required", func(t *testing.T) {
		_, err := parcel.ParseDeliveryStatus("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown status as invalid", func(t *testing.T) {
		_, err := parcel.ParseDeliveryStatus("pending_pickup")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pending_pickup")
	})
}

func TestDeliveryStatus_Classification(t *testing.T) {
	assert.True(t, parcel.PendingPickup.IsStored())
	assert.False(t, parcel.PendingPickup.IsLedgerOnly())
	assert.True(t, parcel.MarkerPaid.IsLedgerOnly())
	assert.False(t, parcel.MarkerCreated.IsStored())
	assert.True(t, parcel.Delivered.IsTerminal())
	assert.False(t, parcel.RiderArriving.IsTerminal())
}

func TestPaymentStatus_Validate(t *testing.T) {
	require.NoError(t, parcel.Unpaid.Validate())
	require.NoError(t, parcel.Paid.Validate())
	require.ErrorIs(t, parcel.PaymentStatus("refunded").Validate(), errs.ErrValueIsInvalid)
}

func TestTransitions(t *testing.T) {
	t.Run("should follow the documented lifecycle", func(t *testing.T) {
		require.NoError(t, parcel.CanTransition(parcel.Created, parcel.PendingPickup))
		require.NoError(t, parcel.CanTransition(parcel.PendingPickup, parcel.DriverAssigned))
		require.NoError(t, parcel.CanTransition(parcel.DriverAssigned, parcel.DriverAssigned))
		require.NoError(t, parcel.CanTransition(parcel.DriverAssigned, parcel.RiderArriving))
		require.NoError(t, parcel.CanTransition(parcel.RiderArriving, parcel.Delivered))
	})

	t.Run("should reject edges outside the table", func(t *testing.T) {
		err := parcel.CanTransition(parcel.Delivered, parcel.Created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "parcel_delivered -> created")
	})

	t.Run("should expose no successor for the terminal state", func(t *testing.T) {
		assert.Empty(t, parcel.NextStatuses(parcel.Delivered))
		assert.Equal(t,
			[]parcel.DeliveryStatus{parcel.DriverAssigned, parcel.RiderArriving},
			parcel.NextStatuses(parcel.DriverAssigned))
	})

	t.Run("should return a copy of the table", func(t *testing.T) {
		table := parcel.Transitions()
		table[0] = parcel.Transition{From: parcel.Delivered, To: parcel.Created}

		assert.Error(t, parcel.CanTransition(parcel.Delivered, parcel.Created))
	})
}

func TestTransitionPolicy_Check(t *testing.T) {
	t.Run("lenient policy allows any change", func(t *testing.T) {
		require.NoError(t, parcel.Lenient.Check(parcel.Delivered, parcel.Created))
	})

	t.Run("strict policy rejects undocumented change", func(t *testing.T) {
		require.ErrorIs(t, parcel.Strict.Check(parcel.Created, parcel.Delivered), errs.ErrValueIsInvalid)
	})

	t.Run("strict policy ignores ledger-only markers", func(t *testing.T) {
		require.NoError(t, parcel.Strict.Check(parcel.Delivered, parcel.MarkerPaid))
	})

	t.Run("zero value is lenient", func(t *testing.T) {
		var p parcel.TransitionPolicy

		assert.Equal(t, parcel.Lenient, p)
		assert.Equal(t, "lenient", p.String())
		assert.Equal(t, "strict", parcel.Strict.String())
	})
}
