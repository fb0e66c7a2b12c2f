package commands

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand is the admin-only role change.
type ChangeUserRoleCommand struct {
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(userID kernel.UUID, rawRole string) (ChangeUserRoleCommand, error) {
	role, err := user.ParseRole(rawRole)
	if err = errors.Join(userID.Validate(), err); err != nil {
		return ChangeUserRoleCommand{}, err
	}
	return ChangeUserRoleCommand{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

type ChangeUserRoleCommandHandler struct {
	store UserRepoFactory
}

func NewChangeUserRoleCommandHandler(store UserRepoFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{store: store}
}

func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	repo := h.store.UserRepository()

	u, err := repo.Get(ctx, cmd.userID)
	if err != nil {
		return err
	}
	if err = u.ChangeRole(cmd.role); err != nil {
		return err
	}
	return repo.UpdateRole(ctx, u)
}
