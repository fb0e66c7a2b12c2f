package payment_test

import (
	"testing"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/payment"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	trackingID, err := kernel.TrackingIDFromString("PRCL-20250101-0A1B2C")
	require.NoError(t, err)
	parcelID := kernel.NewUUID()

	t.Run("should normalise receipt fields", func(t *testing.T) {
		paidAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("BDT", 6*3600))

		p, err := payment.NewPayment(kernel.NewUUID(), payment.Receipt{
			TransactionID: " pi_123 ",
			ParcelID:      parcelID,
			ParcelName:    "Books",
			TrackingID:    trackingID,
			AmountTotal:   15000,
			Currency:      "USD",
			CustomerEmail: "Sam@Example.com",
			PaymentStatus: "paid",
			PaidAt:        paidAt,
		})

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "pi_123", p.TransactionID())
		assert.Equal(t, "usd", p.Currency())
		assert.Equal(t, "sam@example.com", p.CustomerEmail())
		assert.InDelta(t, 150.0, p.Amount(), 0.0001)
		assert.Equal(t, time.UTC, p.PaidAt().Location())
		assert.True(t, p.PaidAt().Equal(paidAt))
		assert.True(t, p.TrackingID().IsEqual(trackingID))
	})

	t.Run("should require transaction id and parcel reference", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), payment.Receipt{AmountTotal: -5})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, payment.ErrTransactionIDIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPayment_Validate(t *testing.T) {
	var zero payment.Payment

	assert.Equal(t, payment.ErrPaymentIsNotConstructed, zero.Validate())
}
