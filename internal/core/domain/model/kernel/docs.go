// Package kernel provides the identity primitives shared by every aggregate of the
// courier dispatch domain.
//
// The package includes:
//   - UUID: record identity for parcels, riders, payments and users
//   - TrackingID: the immutable PRCL-YYYYMMDD-XXXXXX parcel reference that threads
//     through ledger entries and payment rows
//
// Both are immutable values whose zero value fails Validate.
package kernel
