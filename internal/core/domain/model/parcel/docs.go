// Package parcel provides the Parcel aggregate root and its lifecycle vocabulary.
//
// The package includes:
//   - Parcel: identity, sender/receiver parties, declared cost, delivery and payment state
//   - DeliveryStatus: stored lifecycle states plus ledger-only markers
//   - PaymentStatus: unpaid or paid
//   - Transitions/TransitionPolicy: the documented lifecycle table and an opt-in strict mode
//
// Key business rules:
//   - A parcel's tracking id is set once by NewParcel and has no setter
//   - Ledger-only markers (parcel_created, parcel_paid) are never stored on a parcel
//   - Delivery status changes are not checked against the transition table unless a
//     Strict policy is used by the caller
package parcel
