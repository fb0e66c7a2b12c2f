// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
//
// Handlers never open a transaction. A multi-record operation is an ordered sequence
// of independent writes; when a later write fails, earlier writes stay in place and
// the handler returns a step report together with the error.
package commands

import (
	"context"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/ports"
)

// Repository accessors let handlers declare only the collections they touch.
type (
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ReconcileStore is used by payment reconciliation, which writes parcels and payments.
	ReconcileStore interface {
		ParcelRepoFactory
		PaymentRepoFactory
	}

	// RiderReviewStore is used by rider review, which may promote the rider's user account.
	RiderReviewStore interface {
		RiderRepoFactory
		UserRepoFactory
	}
)

// TrackingLedger appends lifecycle events. Implemented by ledger.Ledger.
type TrackingLedger interface {
	Append(ctx context.Context, trackingID kernel.TrackingID, status string) ledger.AppendResult
}

// AvailabilityTracker writes rider works status. Implemented by availability.Tracker.
type AvailabilityTracker interface {
	SetInDelivery(ctx context.Context, riderID kernel.UUID) error
	SetAvailable(ctx context.Context, riderID kernel.UUID) error
}
