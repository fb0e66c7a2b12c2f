// Package ports defines the contracts between the dispatch core and its infrastructure:
// repositories over the four record collections, the payment provider and the
// identity verifier.
package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
)

// ParcelRepository persists parcel aggregates.
//
// Updates are column-targeted: each method writes only the columns its owner is
// responsible for, so concurrent writers of disjoint columns do not overwrite
// each other. Every update returns errs.ObjectNotFoundError when no row matched.
type ParcelRepository interface {
	// Add inserts a new parcel. A duplicate tracking id is reported as
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel. Its ledger entries are kept.
	Delete(ctx context.Context, id kernel.UUID) error

	// UpdateDeliveryStatus writes delivery_status only.
	UpdateDeliveryStatus(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateRiderAssignment writes delivery_status and the rider columns.
	UpdateRiderAssignment(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdatePaymentState writes payment_status and delivery_status.
	UpdatePaymentState(ctx context.Context, aggregate *parcel.Parcel) error
}
