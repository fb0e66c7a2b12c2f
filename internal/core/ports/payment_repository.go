package ports

import (
	"context"

	"courierdispatch/internal/core/domain/model/payment"
)

// PaymentRepository persists settled payments.
type PaymentRepository interface {
	// Add inserts a payment. A second row with the same transaction id is rejected by
	// storage and reported as errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByTransactionID returns errs.ObjectNotFoundError when no payment was recorded
	// for transactionID.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}
