package commands

import (
	"context"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
)

// UpdateParcelStatusResult reports which writes of the status change took effect.
type UpdateParcelStatusResult struct {
	RiderUpdated  bool
	ParcelUpdated bool
	Ledger        ledger.AppendResult
}

// UpdateParcelStatusCommandHandler applies a delivery status change.
//
// Writes, in order:
//  1. for parcel_delivered only: rider works status available
//  2. for stored statuses only: parcel delivery status
//  3. ledger entry of the target status
//
// Ledger-only markers skip step 2. Nothing is undone when a later step fails.
type UpdateParcelStatusCommandHandler struct {
	store       ParcelRepoFactory
	tracker     AvailabilityTracker
	ledger      TrackingLedger
	transitions parcel.TransitionPolicy
	failures    ledger.FailurePolicy
}

func NewUpdateParcelStatusCommandHandler(
	store ParcelRepoFactory,
	tracker AvailabilityTracker,
	trackingLedger TrackingLedger,
	transitions parcel.TransitionPolicy,
	failures ledger.FailurePolicy,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		store:       store,
		tracker:     tracker,
		ledger:      trackingLedger,
		transitions: transitions,
		failures:    failures,
	}
}

func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (UpdateParcelStatusResult, error) {
	var res UpdateParcelStatusResult
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

	target := cmd.Status()
	if err = h.transitions.Check(p.DeliveryStatus(), target); err != nil {
		return res, err
	}

	if target == parcel.Delivered {
		riderID, err := deliveringRider(p, cmd.RiderID())
		if err != nil {
			return res, err
		}
		if err = h.tracker.SetAvailable(ctx, riderID); err != nil {
			return res, err
		}
		res.RiderUpdated = true
	}

	if target.IsStored() {
		if err = p.SetDeliveryStatus(target, h.transitions); err != nil {
			return res, err
		}
		if err = repo.UpdateDeliveryStatus(ctx, p); err != nil {
			return res, err
		}
		res.ParcelUpdated = true
	}

	res.Ledger = h.ledger.Append(ctx, trackingID, target.String())
	return res, h.failures.Settle(res.Ledger)
}

func deliveringRider(p *parcel.Parcel, supplied *kernel.UUID) (kernel.UUID, error) {
	if supplied != nil {
		return *supplied, nil
	}
	if assigned := p.Rider(); assigned != nil {
		return assigned.RiderID, nil
	}
	return kernel.UUID{}, errs.NewValueIsRequiredError("riderId")
}
