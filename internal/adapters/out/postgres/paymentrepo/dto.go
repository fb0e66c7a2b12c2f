// Package paymentrepo persists settled payments. The unique index on transaction_id
// is what makes concurrent reconciliation of one checkout safe.
package paymentrepo

import (
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID string    `gorm:"uniqueIndex;not null"`
	ParcelID      uuid.UUID `gorm:"type:uuid;index"`
	ParcelName    string
	TrackingID    string `gorm:"index"`
	AmountTotal   int64
	Currency      string
	CustomerEmail string `gorm:"index"`
	PaymentStatus string
	PaidAt        time.Time `gorm:"index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		TransactionID: p.TransactionID(),
		ParcelID:      p.ParcelID().Bytes(),
		ParcelName:    p.ParcelName(),
		TrackingID:    p.TrackingID().String(),
		AmountTotal:   p.AmountTotal(),
		Currency:      p.Currency(),
		CustomerEmail: p.CustomerEmail(),
		PaymentStatus: p.PaymentStatus(),
		PaidAt:        p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	return payment.NewPayment(id, payment.Receipt{
		TransactionID: dto.TransactionID,
		ParcelID:      parcelID,
		ParcelName:    dto.ParcelName,
		TrackingID:    trackingID,
		AmountTotal:   dto.AmountTotal,
		Currency:      dto.Currency,
		CustomerEmail: dto.CustomerEmail,
		PaymentStatus: dto.PaymentStatus,
		PaidAt:        dto.PaidAt,
	})
}
