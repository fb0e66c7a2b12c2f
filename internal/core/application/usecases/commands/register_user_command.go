package commands

import (
	"context"
	"errors"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct {
	email       string
	displayName string
	photoURL    string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, displayName, photoURL string) (RegisterUserCommand, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return RegisterUserCommand{}, user.ErrEmailIsRequired
	}
	return RegisterUserCommand{
		email:       email,
		displayName: displayName,
		photoURL:    photoURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string { return c.email }

// RegisterUserResult reports whether a new account was inserted. Registering an
// existing email is not an error; Created is false and UserID is the existing account.
type RegisterUserResult struct {
	Created bool
	UserID  kernel.UUID
}

type RegisterUserCommandHandler struct {
	store UserRepoFactory
}

func NewRegisterUserCommandHandler(store UserRepoFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{store: store}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResult{}, err
	}

	repo := h.store.UserRepository()

	existing, err := repo.GetByEmail(ctx, cmd.email)
	switch {
	case err == nil:
		return RegisterUserResult{UserID: existing.ID()}, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return RegisterUserResult{}, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.email, cmd.displayName, cmd.photoURL, time.Now())
	if err != nil {
		return RegisterUserResult{}, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return RegisterUserResult{}, err
	}
	return RegisterUserResult{Created: true, UserID: u.ID()}, nil
}
