package commands

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand removes a parcel record. Its tracking history is kept.
type DeleteParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DeleteParcelCommand{}, err
	}
	return DeleteParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

type DeleteParcelCommandHandler struct {
	store ParcelRepoFactory
}

func NewDeleteParcelCommandHandler(store ParcelRepoFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{store: store}
}

func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.store.ParcelRepository().Delete(ctx, cmd.ParcelID())
}
