// Package stripepay implements ports.PaymentProvider with Stripe hosted checkout.
package stripepay

import (
	"context"
	"errors"
	"net/http"

	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

var ErrSecretKeyIsRequired = errors.New("stripe secret key is required")

// Provider talks to the Stripe API through a per-instance session client, so the
// package-level stripe.Key is never touched.
type Provider struct {
	client session.Client
}

// NewProvider uses the default Stripe API backend.
func NewProvider(secretKey string) (*Provider, error) {
	return NewProviderWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

// NewProviderWithBackend lets callers point the client at another backend, for
// example a local stub server.
func NewProviderWithBackend(secretKey string, backend stripe.Backend) (*Provider, error) {
	if secretKey == "" {
		return nil, ErrSecretKeyIsRequired
	}
	return &Provider{client: session.Client{B: backend, Key: secretKey}}, nil
}

func (p *Provider) CreateCheckoutSession(ctx context.Context, req ports.CheckoutRequest) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := p.client.New(params)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	return toCheckoutSession(s), nil
}

func (p *Provider) RetrieveCheckoutSession(ctx context.Context, sessionID string) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := p.client.Get(sessionID, params)
	if err != nil {
		if isMissing(err) {
			return ports.CheckoutSession{}, errs.NewObjectNotFoundError("session_id", sessionID)
		}
		return ports.CheckoutSession{}, err
	}
	return toCheckoutSession(s), nil
}

func isMissing(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing
}

func toCheckoutSession(s *stripe.CheckoutSession) ports.CheckoutSession {
	out := ports.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}

var _ ports.PaymentProvider = (*Provider)(nil)
