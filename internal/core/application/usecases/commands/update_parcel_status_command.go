package commands

import (
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel to a new status or records a ledger-only marker.
type UpdateParcelStatusCommand struct {
	parcelID   kernel.UUID
	status     parcel.DeliveryStatus
	riderID    *kernel.UUID
	trackingID string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand parses rawStatus. riderID may be nil; for a delivery it
// then defaults to the parcel's assigned rider.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	rawStatus string,
	riderID *kernel.UUID,
	trackingID string,
) (UpdateParcelStatusCommand, error) {
	status, err := parcel.ParseDeliveryStatus(rawStatus)

	var riderErr error
	if riderID != nil {
		riderErr = riderID.Validate()
	}

	if err = errors.Join(parcelID.Validate(), err, riderErr); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return UpdateParcelStatusCommand{
		parcelID:   parcelID,
		status:     status,
		riderID:    riderID,
		trackingID: strings.TrimSpace(trackingID),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c UpdateParcelStatusCommand) Status() parcel.DeliveryStatus { return c.status }
func (c UpdateParcelStatusCommand) RiderID() *kernel.UUID         { return c.riderID }
func (c UpdateParcelStatusCommand) TrackingID() string            { return c.trackingID }
