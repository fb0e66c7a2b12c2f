package commands

import (
	"context"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/parcel"
)

// AssignRiderResult reports which writes of the assignment took effect.
type AssignRiderResult struct {
	ParcelUpdated bool
	RiderUpdated  bool
	Ledger        ledger.AppendResult
}

// AssignRiderCommandHandler moves a parcel to driver_assigned and marks the rider busy.
//
// Writes, in order:
//  1. parcel delivery status and rider columns
//  2. rider works status in_delivery
//  3. driver_assigned ledger entry
//
// Nothing is undone when a later step fails. If step 2 fails the parcel stays
// assigned, the error is returned and step 3 is not attempted.
type AssignRiderCommandHandler struct {
	store       ParcelRepoFactory
	tracker     AvailabilityTracker
	ledger      TrackingLedger
	transitions parcel.TransitionPolicy
	failures    ledger.FailurePolicy
}

func NewAssignRiderCommandHandler(
	store ParcelRepoFactory,
	tracker AvailabilityTracker,
	trackingLedger TrackingLedger,
	transitions parcel.TransitionPolicy,
	failures ledger.FailurePolicy,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		store:       store,
		tracker:     tracker,
		ledger:      trackingLedger,
		transitions: transitions,
		failures:    failures,
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (AssignRiderResult, error) {
	var res AssignRiderResult
	if err := cmd.Validate(); err != nil {
		return res, err
	}

	repo := h.store.ParcelRepository()

	p, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return res, err
	}

	trackingID, err := ledgerTrackingID(p, cmd.TrackingID())
	if err != nil {
		return res, err
	}

	if err = p.AssignRider(parcel.RiderAssignment{
		RiderID: cmd.RiderID(),
		Name:    cmd.RiderName(),
		Email:   cmd.RiderEmail(),
	}, h.transitions); err != nil {
		return res, err
	}

	if err = repo.UpdateRiderAssignment(ctx, p); err != nil {
		return res, err
	}
	res.ParcelUpdated = true

	if err = h.tracker.SetInDelivery(ctx, cmd.RiderID()); err != nil {
		return res, err
	}
	res.RiderUpdated = true

	res.Ledger = h.ledger.Append(ctx, trackingID, parcel.DriverAssigned.String())
	return res, h.failures.Settle(res.Ledger)
}
