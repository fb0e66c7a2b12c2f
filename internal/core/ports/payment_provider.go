package ports

import "context"

// CheckoutRequest describes a hosted checkout for one parcel.
type CheckoutRequest struct {
	// UnitAmount is in minor currency units.
	UnitAmount    int64
	Currency      string
	ProductName   string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider's view of a checkout.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	// PaymentStatus is the provider's raw value; "paid" means the funds were captured.
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// PaymentProvider creates and retrieves hosted checkout sessions.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}
