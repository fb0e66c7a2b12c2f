// Package availability keeps a rider's works status in step with the parcels they carry.
package availability

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/core/ports"
)

// Tracker writes rider works status. Writes are unconditional: there is no version
// check and the last writer wins.
type Tracker struct {
	riders ports.RiderRepository
}

func NewTracker(riders ports.RiderRepository) (*Tracker, error) {
	if riders == nil {
		return nil, errors.New("rider repository is required")
	}
	return &Tracker{riders: riders}, nil
}

// SetInDelivery marks the rider busy. Returns errs.ObjectNotFoundError for an unknown rider.
func (t *Tracker) SetInDelivery(ctx context.Context, riderID kernel.UUID) error {
	return t.set(ctx, riderID, rider.InDelivery)
}

// SetAvailable marks the rider free.
func (t *Tracker) SetAvailable(ctx context.Context, riderID kernel.UUID) error {
	return t.set(ctx, riderID, rider.Available)
}

func (t *Tracker) set(ctx context.Context, riderID kernel.UUID, status rider.WorksStatus) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	return t.riders.UpdateWorksStatus(ctx, riderID, status)
}
