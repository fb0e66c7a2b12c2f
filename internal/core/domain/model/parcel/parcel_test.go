package parcel_test

import (
	"testing"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() parcel.Details {
	return parcel.Details{
		Name:   "Books",
		Type:   "document",
		Weight: 1.5,
		Sender: parcel.Party{
			Name:  "Sam Sender",
			Email: " Sam@Example.com ",
		},
		Receiver: parcel.Party{
			Name:     "Rae Receiver",
			District: "Dhaka",
		},
		Cost: 150,
	}
}

func mustTrackingID(t *testing.T) kernel.TrackingID {
	t.Helper()
	id, err := kernel.TrackingIDFromString("PRCL-20250101-ABC123")
	require.NoError(t, err)
	return id
}

func TestNewParcel(t *testing.T) {
	trackingID := mustTrackingID(t)
	createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create unpaid parcel in created state", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := parcel.NewParcel(id, trackingID, validDetails(), createdAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.TrackingID().IsEqual(trackingID))
		assert.Equal(t, parcel.Created, p.DeliveryStatus())
		assert.Equal(t, parcel.Unpaid, p.PaymentStatus())
		assert.False(t, p.IsPaid())
		assert.Nil(t, p.Rider())
		assert.Equal(t, "sam@example.com", p.Sender().Email)
		assert.Equal(t, int64(150), p.Cost())
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("should accept zero cost", func(t *testing.T) {
		d := validDetails()
		d.Cost = 0

		_, err := parcel.NewParcel(kernel.NewUUID(), trackingID, d, createdAt)

		require.NoError(t, err)
	})

	t.Run("should join every validation failure", func(t *testing.T) {
		d := validDetails()
		d.Sender.Email = ""
		d.Receiver.Name = " "
		d.Cost = -1

		p, err := parcel.NewParcel(kernel.UUID{}, kernel.TrackingID{}, d, createdAt)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "senderEmail")
		assert.Contains(t, err.Error(), "receiverName")
		assert.Contains(t, err.Error(), "-1 is less than 0")
		assert.Contains(t, err.Error(), "trackingId")
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("should refuse ledger-only marker as stored status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(kernel.NewUUID(), mustTrackingID(t), validDetails(),
			parcel.MarkerPaid, parcel.Paid, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep persisted rider and statuses", func(t *testing.T) {
		riderID := kernel.NewUUID()

		p, err := parcel.RestoreParcel(kernel.NewUUID(), mustTrackingID(t), validDetails(),
			parcel.RiderArriving, parcel.Paid,
			&parcel.RiderAssignment{RiderID: riderID, Name: "Rob", Email: "rob@example.com"},
			time.Now())

		require.NoError(t, err)
		assert.Equal(t, parcel.RiderArriving, p.DeliveryStatus())
		assert.True(t, p.IsPaid())
		require.NotNil(t, p.Rider())
		assert.True(t, p.Rider().RiderID.IsEqual(riderID))
	})
}

func TestParcel_Validate(t *testing.T) {
	var zero parcel.Parcel
	var nilParcel *parcel.Parcel

	assert.Equal(t, parcel.ErrParcelIsNotConstructed, zero.Validate())
	assert.Equal(t, parcel.ErrParcelIsNotConstructed, nilParcel.Validate())
}

func TestParcel_AssignRider(t *testing.T) {
	newParcel := func(t *testing.T) *parcel.Parcel {
		p, err := parcel.NewParcel(kernel.NewUUID(), mustTrackingID(t), validDetails(), time.Now())
		require.NoError(t, err)
		return p
	}

	t.Run("should record rider and move to driver_assigned", func(t *testing.T) {
		p := newParcel(t)
		riderID := kernel.NewUUID()

		err := p.AssignRider(parcel.RiderAssignment{RiderID: riderID, Name: " Rob ", Email: "ROB@x.io"}, parcel.Lenient)

		require.NoError(t, err)
		assert.Equal(t, parcel.DriverAssigned, p.DeliveryStatus())
		assert.Equal(t, "Rob", p.Rider().Name)
		assert.Equal(t, "rob@x.io", p.Rider().Email)
	})

	t.Run("should replace the previous rider on reassignment", func(t *testing.T) {
		p := newParcel(t)
		second := kernel.NewUUID()
		require.NoError(t, p.AssignRider(parcel.RiderAssignment{RiderID: kernel.NewUUID()}, parcel.Lenient))
		require.NoError(t, p.AssignRider(parcel.RiderAssignment{RiderID: second}, parcel.Strict))

		assert.True(t, p.Rider().RiderID.IsEqual(second))
	})

	t.Run("should reject zero rider id", func(t *testing.T) {
		p := newParcel(t)

		err := p.AssignRider(parcel.RiderAssignment{}, parcel.Lenient)

		require.Error(t, err)
		assert.Equal(t, parcel.Created, p.DeliveryStatus())
	})

	t.Run("strict policy rejects assignment of a created parcel", func(t *testing.T) {
		p := newParcel(t)

		err := p.AssignRider(parcel.RiderAssignment{RiderID: kernel.NewUUID()}, parcel.Strict)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, p.Rider())
	})

	t.Run("returned rider is a copy", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.AssignRider(parcel.RiderAssignment{RiderID: kernel.NewUUID(), Name: "Rob"}, parcel.Lenient))

		p.Rider().Name = "changed"

		assert.Equal(t, "Rob", p.Rider().Name)
	})
}

func TestParcel_SetDeliveryStatus(t *testing.T) {
	p, err := parcel.NewParcel(kernel.NewUUID(), mustTrackingID(t), validDetails(), time.Now())
	require.NoError(t, err)

	t.Run("lenient policy allows skipping states", func(t *testing.T) {
		require.NoError(t, p.SetDeliveryStatus(parcel.Delivered, parcel.Lenient))
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("markers are never stored", func(t *testing.T) {
		err := p.SetDeliveryStatus(parcel.MarkerCreated, parcel.Lenient)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("strict policy rejects leaving the terminal state", func(t *testing.T) {
		err := p.SetDeliveryStatus(parcel.Created, parcel.Strict)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_MarkPaid(t *testing.T) {
	p, err := parcel.NewParcel(kernel.NewUUID(), mustTrackingID(t), validDetails(), time.Now())
	require.NoError(t, err)
	trackingID := p.TrackingID()

	p.MarkPaid()

	assert.True(t, p.IsPaid())
	assert.Equal(t, parcel.PendingPickup, p.DeliveryStatus())
	assert.True(t, p.TrackingID().IsEqual(trackingID))
}
