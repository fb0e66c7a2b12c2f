package parcel

import (
	"fmt"

	"courierdispatch/internal/pkg/errs"
)

// Transition is one documented edge of the delivery lifecycle.
type Transition struct {
	From DeliveryStatus
	To   DeliveryStatus
}

// transitionTable lists the edges the business process follows.
// driver_assigned -> driver_assigned covers reassignment to another rider.
var transitionTable = []Transition{
	{From: Created, To: PendingPickup},
	{From: PendingPickup, To: DriverAssigned},
	{From: DriverAssigned, To: DriverAssigned},
	{From: DriverAssigned, To: RiderArriving},
	{From: RiderArriving, To: Delivered},
}

// Transitions returns a copy of the lifecycle table.
func Transitions() []Transition {
	out := make([]Transition, len(transitionTable))
	copy(out, transitionTable)
	return out
}

// NextStatuses lists the statuses reachable from s in one documented step.
func NextStatuses(s DeliveryStatus) []DeliveryStatus {
	var next []DeliveryStatus
	for _, t := range transitionTable {
		if t.From == s {
			next = append(next, t.To)
		}
	}
	return next
}

// CanTransition reports whether from -> to is a documented edge.
func CanTransition(from, to DeliveryStatus) error {
	for _, t := range transitionTable {
		if t.From == from && t.To == to {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("transition %s -> %s is not in the lifecycle table", from, to),
	)
}

// TransitionPolicy decides whether status changes are checked against the table.
type TransitionPolicy int

const (
	// Lenient lets any stored status follow any other. This is the service default.
	Lenient TransitionPolicy = iota
	// Strict rejects changes that are not in the lifecycle table.
	Strict
)

// Check applies the policy to a proposed change. Ledger-only markers are never checked.
func (p TransitionPolicy) Check(from, to DeliveryStatus) error {
	if p != Strict || to.IsLedgerOnly() {
		return nil
	}
	return CanTransition(from, to)
}

func (p TransitionPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}
