package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add inserts an account. A taken email is errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateRole(ctx context.Context, aggregate *user.User) error
}
