package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
)

// RiderRepository persists rider aggregates.
type RiderRepository interface {
	// Add inserts a rider application. A taken email is errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *rider.Rider) error

	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	GetByEmail(ctx context.Context, email string) (*rider.Rider, error)

	// UpdateWorksStatus is an unconditional single-column write keyed by id.
	UpdateWorksStatus(ctx context.Context, id kernel.UUID, status rider.WorksStatus) error

	// UpdateReview writes status and works_status.
	UpdateReview(ctx context.Context, aggregate *rider.Rider) error
}
