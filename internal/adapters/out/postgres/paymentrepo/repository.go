package paymentrepo

import (
	"context"

	"courierdispatch/internal/adapters/out/postgres/dberr"
	"courierdispatch/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

const paramTransactionID = "transactionId"

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add inserts the payment; a second insert for the same transaction id fails on the
// unique index and is reported as errs.ObjectAlreadyExistsError.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberr.Insert(err, paramTransactionID, dto.TransactionID)
}

func (r *GormPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, dberr.Lookup(err, paramTransactionID, transactionID)
	}

	return toDomain(dto)
}
