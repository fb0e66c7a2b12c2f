package commands

import (
	"errors"

	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrSenderEmailIsRequired = errs.NewValueIsRequiredError("senderEmail")
)

// CreateParcelCommand registers a new parcel for delivery.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(parcel.Details{
//	    Name:     "Books",
//	    Sender:   parcel.Party{Email: "sam@example.com"},
//	    Receiver: parcel.Party{Name: "Rae"},
//	    Cost:     150,
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct {
	details parcel.Details

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand checks the fields a parcel cannot exist without; the
// aggregate re-validates everything on construction.
func NewCreateParcelCommand(details parcel.Details) (CreateParcelCommand, error) {
	if details.Sender.Email == "" {
		return CreateParcelCommand{}, ErrSenderEmailIsRequired
	}
	return CreateParcelCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}
