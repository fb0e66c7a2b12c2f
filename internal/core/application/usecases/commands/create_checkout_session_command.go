package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

const checkoutCurrency = "usd"

var ErrCreateCheckoutSessionCommandIsNotConstructed = errors.New(
	"CreateCheckoutSessionCommand must be created via NewCreateCheckoutSessionCommand constructor",
)

// CreateCheckoutSessionCommand asks the payment provider for a hosted checkout page
// for one parcel's delivery fee.
type CreateCheckoutSessionCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCheckoutSessionCommand(parcelID kernel.UUID) (CreateCheckoutSessionCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CreateCheckoutSessionCommand{}, err
	}
	return CreateCheckoutSessionCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCheckoutSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckoutSessionCommandIsNotConstructed)
}

func (c CreateCheckoutSessionCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CheckoutSessionResult is where the customer is sent to pay.
type CheckoutSessionResult struct {
	SessionID string
	URL       string
}

// CreateCheckoutSessionCommandHandler builds the checkout from the stored parcel, so
// the session metadata always carries the parcel's real id and tracking id.
type CreateCheckoutSessionCommandHandler struct {
	store      ParcelRepoFactory
	provider   ports.PaymentProvider
	siteDomain string
}

func NewCreateCheckoutSessionCommandHandler(
	store ParcelRepoFactory,
	provider ports.PaymentProvider,
	siteDomain string,
) CreateCheckoutSessionCommandHandler {
	return CreateCheckoutSessionCommandHandler{
		store:      store,
		provider:   provider,
		siteDomain: strings.TrimRight(siteDomain, "/"),
	}
}

func (h CreateCheckoutSessionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCheckoutSessionCommand,
) (CheckoutSessionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutSessionResult{}, err
	}

	p, err := h.store.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return CheckoutSessionResult{}, err
	}
	if p.IsPaid() {
		return CheckoutSessionResult{}, errs.NewObjectAlreadyExistsError("payment", p.ID())
	}

	session, err := h.provider.CreateCheckoutSession(ctx, ports.CheckoutRequest{
		UnitAmount:    p.Cost() * 100,
		Currency:      checkoutCurrency,
		ProductName:   fmt.Sprintf("Please pay for %s", p.Name()),
		CustomerEmail: p.Sender().Email,
		Metadata: map[string]string{
			MetadataParcelID:   p.ID().String(),
			MetadataTrackingID: p.TrackingID().String(),
		},
		SuccessURL: h.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  h.siteDomain + "/dashboard/payment-cancelled",
	})
	if err != nil {
		if errors.Is(err, errs.ErrUpstreamFailure) {
			return CheckoutSessionResult{}, err
		}
		return CheckoutSessionResult{}, errs.NewUpstreamFailureErrorWithCause(paymentProviderName, err)
	}

	return CheckoutSessionResult{SessionID: session.ID, URL: session.URL}, nil
}
