package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrTransactionIDIsRequired = errs.NewValueIsRequiredError("transactionId")
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Receipt is the settled-checkout data a Payment is built from.
type Receipt struct {
	TransactionID string
	ParcelID      kernel.UUID
	ParcelName    string
	TrackingID    kernel.TrackingID
	// AmountTotal is in the currency's minor units, as reported by the provider.
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	PaymentStatus string
	PaidAt        time.Time
}

type Payment struct {
	id      kernel.UUID
	receipt Receipt

	guard guard.ConstructorGuard
}

func NewPayment(id kernel.UUID, receipt Receipt) (*Payment, error) {
	p := &Payment{guard: guard.NewConstructorGuard()}

	receipt.TransactionID = strings.TrimSpace(receipt.TransactionID)
	receipt.Currency = strings.ToLower(strings.TrimSpace(receipt.Currency))
	receipt.CustomerEmail = strings.ToLower(strings.TrimSpace(receipt.CustomerEmail))
	receipt.PaidAt = receipt.PaidAt.UTC()

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if receipt.TransactionID == "" {
		problems = append(problems, ErrTransactionIDIsRequired)
	}
	if err := receipt.ParcelID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := receipt.TrackingID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if receipt.AmountTotal < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"amountTotal", fmt.Errorf("%d is less than 0", receipt.AmountTotal)))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	p.id = id
	p.receipt = receipt
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID               { return p.id }
func (p *Payment) TransactionID() string         { return p.receipt.TransactionID }
func (p *Payment) ParcelID() kernel.UUID         { return p.receipt.ParcelID }
func (p *Payment) ParcelName() string            { return p.receipt.ParcelName }
func (p *Payment) TrackingID() kernel.TrackingID { return p.receipt.TrackingID }
func (p *Payment) AmountTotal() int64            { return p.receipt.AmountTotal }
func (p *Payment) Currency() string              { return p.receipt.Currency }
func (p *Payment) CustomerEmail() string         { return p.receipt.CustomerEmail }
func (p *Payment) PaymentStatus() string         { return p.receipt.PaymentStatus }
func (p *Payment) PaidAt() time.Time             { return p.receipt.PaidAt }

// Amount returns the total in whole currency units.
func (p *Payment) Amount() float64 {
	return float64(p.receipt.AmountTotal) / 100
}
