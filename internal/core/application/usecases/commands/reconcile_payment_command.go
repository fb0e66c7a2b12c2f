package commands

import (
	"errors"
	"strings"

	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrReconcilePaymentCommandIsNotConstructed = errors.New(
		"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
	)
	ErrSessionIDIsRequired = errs.NewValueIsRequiredError("session_id")
)

// ReconcilePaymentCommand confirms the outcome of a hosted checkout session.
// The same session may be confirmed any number of times.
type ReconcilePaymentCommand struct {
	sessionID string

	guard guard.ConstructorGuard
}

func NewReconcilePaymentCommand(sessionID string) (ReconcilePaymentCommand, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ReconcilePaymentCommand{}, ErrSessionIDIsRequired
	}
	return ReconcilePaymentCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

func (c ReconcilePaymentCommand) SessionID() string {
	return c.sessionID
}
