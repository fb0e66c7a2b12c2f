package parcel

import (
	"fmt"
	"strings"

	"courierdispatch/internal/pkg/errs"
)

// DeliveryStatus is the parcel's position in its lifecycle.
//
// Stored states:
//
//	created ──> pending-pickup ──> driver_assigned ──> rider_arriving ──> parcel_delivered
//
// The raw string values are part of the wire format and the database contents,
// including the one hyphenated value.
type DeliveryStatus string

const (
	Created        DeliveryStatus = "created"
	PendingPickup  DeliveryStatus = "pending-pickup"
	DriverAssigned DeliveryStatus = "driver_assigned"
	RiderArriving  DeliveryStatus = "rider_arriving"
	Delivered      DeliveryStatus = "parcel_delivered"

	// MarkerCreated and MarkerPaid only ever appear as ledger entries.
	MarkerCreated DeliveryStatus = "parcel_created"
	MarkerPaid    DeliveryStatus = "parcel_paid"
)

func storedStatuses() map[DeliveryStatus]struct{} {
	return map[DeliveryStatus]struct{}{
		Created:        {},
		PendingPickup:  {},
		DriverAssigned: {},
		RiderArriving:  {},
		Delivered:      {},
	}
}

func markerStatuses() map[DeliveryStatus]struct{} {
	return map[DeliveryStatus]struct{}{
		MarkerCreated: {},
		MarkerPaid:    {},
	}
}

// ParseDeliveryStatus accepts any stored status or ledger-only marker.
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	s := DeliveryStatus(strings.TrimSpace(raw))
	if s == "" {
		return "", errs.NewValueIsRequiredError("deliveryStatus")
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate accepts stored statuses and markers.
func (s DeliveryStatus) Validate() error {
	if s.IsStored() || s.IsLedgerOnly() {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a known delivery status", string(s)),
	)
}

// IsStored reports whether the status may be written to a parcel record.
func (s DeliveryStatus) IsStored() bool {
	_, ok := storedStatuses()[s]
	return ok
}

// IsLedgerOnly reports whether the status is a ledger marker.
func (s DeliveryStatus) IsLedgerOnly() bool {
	_, ok := markerStatuses()[s]
	return ok
}

// IsTerminal reports whether no lifecycle state follows s.
func (s DeliveryStatus) IsTerminal() bool {
	return s == Delivered
}

func (s DeliveryStatus) String() string {
	return string(s)
}

// PaymentStatus tracks whether the parcel's delivery fee was collected.
type PaymentStatus string

const (
	Unpaid PaymentStatus = "unpaid"
	Paid   PaymentStatus = "paid"
)

func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%q is not a known payment status", string(s)),
		)
	}
	return nil
}

func (s PaymentStatus) String() string {
	return string(s)
}
