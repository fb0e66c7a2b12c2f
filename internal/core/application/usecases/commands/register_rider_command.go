package commands

import (
	"context"
	"errors"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand files a rider application for admin review.
type RegisterRiderCommand struct {
	profile rider.Profile

	guard guard.ConstructorGuard
}

func NewRegisterRiderCommand(profile rider.Profile) (RegisterRiderCommand, error) {
	if profile.Email == "" {
		return RegisterRiderCommand{}, rider.ErrEmailIsRequired
	}
	return RegisterRiderCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

type RegisterRiderCommandHandler struct {
	store RiderRepoFactory
}

func NewRegisterRiderCommandHandler(store RiderRepoFactory) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{store: store}
}

// Handle inserts a pending rider. A second application with the same email is
// errs.ObjectAlreadyExistsError.
func (h RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	r, err := rider.NewRider(kernel.NewUUID(), cmd.profile, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.store.RiderRepository().Add(ctx, r); err != nil {
		return kernel.UUID{}, err
	}
	return r.ID(), nil
}
