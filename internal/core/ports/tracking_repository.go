package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/tracking"
)

// TrackingRepository is the append-only store behind the tracking ledger.
type TrackingRepository interface {
	// Append inserts entry and returns the sequence number storage assigned to it.
	Append(ctx context.Context, entry *tracking.Entry) (uint64, error)

	// ListByTrackingID returns entries in insertion order. An unknown tracking id
	// yields an empty slice, not an error.
	ListByTrackingID(ctx context.Context, trackingID kernel.TrackingID) ([]*tracking.Entry, error)
}
