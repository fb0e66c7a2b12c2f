package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel bypassed NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Details is the caller-supplied part of a new parcel.
type Details struct {
	Name     string
	Type     string
	Weight   float64
	Sender   Party
	Receiver Party
	// Cost is the declared delivery fee in whole currency units.
	Cost int64
}

// RiderAssignment identifies the rider carrying a parcel.
type RiderAssignment struct {
	RiderID kernel.UUID
	Name    string
	Email   string
}

// Parcel is the aggregate root of the delivery lifecycle.
//
// Invariants:
//   - trackingID is set at construction and never changes
//   - sender email and receiver name are present
//   - cost is not negative
//   - deliveryStatus is always a stored status, never a ledger-only marker
type Parcel struct {
	id             kernel.UUID
	trackingID     kernel.TrackingID
	details        Details
	deliveryStatus DeliveryStatus
	paymentStatus  PaymentStatus
	rider          *RiderAssignment
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates an unpaid parcel in the created state.
func NewParcel(id kernel.UUID, trackingID kernel.TrackingID, details Details, createdAt time.Time) (*Parcel, error) {
	p := &Parcel{
		deliveryStatus: Created,
		paymentStatus:  Unpaid,
		createdAt:      createdAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rebuilds a parcel from persisted state.
func RestoreParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	details Details,
	deliveryStatus DeliveryStatus,
	paymentStatus PaymentStatus,
	rider *RiderAssignment,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		rider:     rider,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setStoredStatus(deliveryStatus),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	p.details = details
	p.paymentStatus = paymentStatus

	return p, nil
}

func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID                { return p.id }
func (p *Parcel) TrackingID() kernel.TrackingID  { return p.trackingID }
func (p *Parcel) Details() Details               { return p.details }
func (p *Parcel) Name() string                   { return p.details.Name }
func (p *Parcel) Sender() Party                  { return p.details.Sender }
func (p *Parcel) Receiver() Party                { return p.details.Receiver }
func (p *Parcel) Cost() int64                    { return p.details.Cost }
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }
func (p *Parcel) PaymentStatus() PaymentStatus   { return p.paymentStatus }
func (p *Parcel) CreatedAt() time.Time           { return p.createdAt }

// Rider returns the current assignment, or nil when no rider was ever assigned.
func (p *Parcel) Rider() *RiderAssignment {
	if p.rider == nil {
		return nil
	}
	r := *p.rider
	return &r
}

// IsPaid reports whether the delivery fee was collected.
func (p *Parcel) IsPaid() bool {
	return p.paymentStatus == Paid
}

// AssignRider records the rider and moves the parcel to driver_assigned.
// Reassignment replaces the previous rider.
func (p *Parcel) AssignRider(assignment RiderAssignment, policy TransitionPolicy) error {
	if err := assignment.RiderID.Validate(); err != nil {
		return err
	}
	if err := policy.Check(p.deliveryStatus, DriverAssigned); err != nil {
		return err
	}

	assignment.Name = strings.TrimSpace(assignment.Name)
	assignment.Email = strings.ToLower(strings.TrimSpace(assignment.Email))
	p.rider = &assignment
	p.deliveryStatus = DriverAssigned
	return nil
}

// SetDeliveryStatus stores a new lifecycle state. Ledger-only markers are rejected;
// callers record those in the tracking ledger without touching the parcel.
func (p *Parcel) SetDeliveryStatus(status DeliveryStatus, policy TransitionPolicy) error {
	if err := policy.Check(p.deliveryStatus, status); err != nil {
		return err
	}
	return p.setStoredStatus(status)
}

// MarkPaid records payment and moves the parcel to pending-pickup.
func (p *Parcel) MarkPaid() {
	p.paymentStatus = Paid
	p.deliveryStatus = PendingPickup
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setStoredStatus(status DeliveryStatus) error {
	if !status.IsStored() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%q cannot be stored on a parcel", string(status)),
		)
	}
	p.deliveryStatus = status
	return nil
}

func (p *Parcel) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Type = strings.TrimSpace(d.Type)
	d.Sender = d.Sender.normalized()
	d.Receiver = d.Receiver.normalized()

	var problems []error
	if d.Sender.Email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("senderEmail"))
	}
	if d.Receiver.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("receiverName"))
	}
	if d.Cost < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"cost", fmt.Errorf("%d is less than 0", d.Cost)))
	}
	if d.Weight < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is less than 0", d.Weight)))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	p.details = d
	return nil
}
