package commands

import (
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand hands a parcel to a rider.
type AssignRiderCommand struct {
	parcelID   kernel.UUID
	riderID    kernel.UUID
	riderName  string
	riderEmail string
	trackingID string

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand builds the command. trackingID may be empty, in which case
// the parcel's stored tracking id is used for the ledger entry.
func NewAssignRiderCommand(
	parcelID, riderID kernel.UUID,
	riderName, riderEmail, trackingID string,
) (AssignRiderCommand, error) {
	if err := errors.Join(parcelID.Validate(), riderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}
	return AssignRiderCommand{
		parcelID:   parcelID,
		riderID:    riderID,
		riderName:  strings.TrimSpace(riderName),
		riderEmail: strings.TrimSpace(riderEmail),
		trackingID: strings.TrimSpace(trackingID),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID  { return c.riderID }
func (c AssignRiderCommand) RiderName() string     { return c.riderName }
func (c AssignRiderCommand) RiderEmail() string    { return c.riderEmail }
func (c AssignRiderCommand) TrackingID() string    { return c.trackingID }
