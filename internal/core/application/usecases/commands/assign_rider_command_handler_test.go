package commands_test

import (
	"errors"
	"testing"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignHandler(
	parcels *MockParcelRepository,
	tracker *MockTracker,
	trackingLedger *MockLedger,
	transitions parcel.TransitionPolicy,
) commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(
		stubStore{parcels: parcels}, tracker, trackingLedger, transitions, ledger.Tolerate)
}

func TestAssignRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)
	riderID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	tracker := new(MockTracker)
	trackingLedger := new(MockLedger)

	mock.InOrder(
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		parcels.On("UpdateRiderAssignment", ctx, mock.MatchedBy(func(got *parcel.Parcel) bool {
			return got.DeliveryStatus() == parcel.DriverAssigned && got.Rider().RiderID.IsEqual(riderID)
		})).Return(nil).Once(),
		tracker.On("SetInDelivery", ctx, riderID).Return(nil).Once(),
		trackingLedger.On("Append", ctx, p.TrackingID(), "driver_assigned").
			Return(ledger.AppendResult{EntryID: 2}).Once(),
	)

	cmd, err := commands.NewAssignRiderCommand(p.ID(), riderID, "Rob", "rob@example.com", testTrackingID)
	require.NoError(t, err)

	res, err := newAssignHandler(parcels, tracker, trackingLedger, parcel.Lenient).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.ParcelUpdated)
	assert.True(t, res.RiderUpdated)
	assert.Equal(t, uint64(2), res.Ledger.EntryID)
	parcels.AssertExpectations(t)
	tracker.AssertExpectations(t)
	trackingLedger.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_UsesStoredTrackingIDWhenOmitted(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)
	riderID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	tracker := new(MockTracker)
	trackingLedger := new(MockLedger)
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	parcels.On("UpdateRiderAssignment", ctx, p).Return(nil).Once()
	tracker.On("SetInDelivery", ctx, riderID).Return(nil).Once()
	trackingLedger.On("Append", ctx, p.TrackingID(), "driver_assigned").Return(ledger.AppendResult{EntryID: 1}).Once()

	cmd, err := commands.NewAssignRiderCommand(p.ID(), riderID, "Rob", "", "")
	require.NoError(t, err)

	_, err = newAssignHandler(parcels, tracker, trackingLedger, parcel.Lenient).Handle(ctx, cmd)

	require.NoError(t, err)
	trackingLedger.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_RiderWriteFailsAfterParcelWrite(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)
	riderID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	tracker := new(MockTracker)
	trackingLedger := new(MockLedger)

	mock.InOrder(
		parcels.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		parcels.On("UpdateRiderAssignment", ctx, p).Return(nil).Once(),
		tracker.On("SetInDelivery", ctx, riderID).Return(errs.NewObjectNotFoundError("riderId", riderID)).Once(),
	)

	cmd, err := commands.NewAssignRiderCommand(p.ID(), riderID, "Rob", "", "")
	require.NoError(t, err)

	res, err := newAssignHandler(parcels, tracker, trackingLedger, parcel.Lenient).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.True(t, res.ParcelUpdated, "parcel write is not rolled back")
	assert.False(t, res.RiderUpdated)
	assert.Equal(t, parcel.DriverAssigned, p.DeliveryStatus())
	trackingLedger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	parcels := new(MockParcelRepository)
	tracker := new(MockTracker)
	parcels.On("Get", ctx, parcelID).Return(nil, errs.NewObjectNotFoundError("parcelId", parcelID)).Once()

	cmd, err := commands.NewAssignRiderCommand(parcelID, kernel.NewUUID(), "Rob", "", "")
	require.NoError(t, err)

	res, err := newAssignHandler(parcels, tracker, new(MockLedger), parcel.Lenient).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, res.ParcelUpdated)
	tracker.AssertNotCalled(t, "SetInDelivery", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_ForeignTrackingIDRejected(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)

	parcels := new(MockParcelRepository)
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()

	cmd, err := commands.NewAssignRiderCommand(p.ID(), kernel.NewUUID(), "Rob", "", "PRCL-20240101-000000")
	require.NoError(t, err)

	_, err = newAssignHandler(parcels, new(MockTracker), new(MockLedger), parcel.Lenient).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	parcels.AssertNotCalled(t, "UpdateRiderAssignment", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_StrictPolicyRejectsUnpaidParcel(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)

	parcels := new(MockParcelRepository)
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()

	cmd, err := commands.NewAssignRiderCommand(p.ID(), kernel.NewUUID(), "Rob", "", "")
	require.NoError(t, err)

	_, err = newAssignHandler(parcels, new(MockTracker), new(MockLedger), parcel.Strict).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	parcels.AssertNotCalled(t, "UpdateRiderAssignment", mock.Anything, mock.Anything)
}

func TestAssignRiderCommandHandler_Handle_ParcelWriteError(t *testing.T) {
	ctx := t.Context()
	p := newTestParcel(t)

	parcels := new(MockParcelRepository)
	tracker := new(MockTracker)
	parcels.On("Get", ctx, p.ID()).Return(p, nil).Once()
	parcels.On("UpdateRiderAssignment", ctx, p).Return(errors.New("database error")).Once()

	cmd, err := commands.NewAssignRiderCommand(p.ID(), kernel.NewUUID(), "Rob", "", "")
	require.NoError(t, err)

	res, err := newAssignHandler(parcels, tracker, new(MockLedger), parcel.Lenient).Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	assert.False(t, res.ParcelUpdated)
	tracker.AssertNotCalled(t, "SetInDelivery", mock.Anything, mock.Anything)
}
