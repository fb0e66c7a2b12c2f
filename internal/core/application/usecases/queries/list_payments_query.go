package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListPaymentsQueryIsNotConstructed = errors.New(
		"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
	)
)

// ListPaymentsQuery lists settled payments, latest first. An empty customer email
// lists all of them.
type ListPaymentsQuery struct {
	customerEmail string
	guard         guard.ConstructorGuard
}

func NewListPaymentsQuery(customerEmail string) ListPaymentsQuery {
	return ListPaymentsQuery{
		customerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListPaymentsQuery) CustomerEmail() string { return q.customerEmail }

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

type PaymentView struct {
	ID            kernel.UUID
	TransactionID string
	ParcelID      kernel.UUID
	ParcelName    string
	TrackingID    string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	PaymentStatus string
	PaidAt        time.Time
}

// Amount is AmountTotal in major currency units.
func (v PaymentView) Amount() float64 {
	return float64(v.AmountTotal) / 100
}

type paymentRow struct {
	ID            uuid.UUID
	TransactionID string
	ParcelID      uuid.UUID
	ParcelName    string
	TrackingID    string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	PaymentStatus string
	PaidAt        time.Time
}

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("payments").Select(
		"id, transaction_id, parcel_id, parcel_name, tracking_id, amount_total, " +
			"currency, customer_email, payment_status, paid_at",
	)
	if query.customerEmail != "" {
		tx = tx.Where("customer_email = ?", query.customerEmail)
	}

	var rows []paymentRow
	if err := tx.Order("paid_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	payments := make([]PaymentView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		parcelID, err := kernel.UUIDFromBytes(row.ParcelID[:])
		if err != nil {
			return nil, err
		}

		payments = append(payments, PaymentView{
			ID:            id,
			TransactionID: row.TransactionID,
			ParcelID:      parcelID,
			ParcelName:    row.ParcelName,
			TrackingID:    row.TrackingID,
			AmountTotal:   row.AmountTotal,
			Currency:      row.Currency,
			CustomerEmail: row.CustomerEmail,
			PaymentStatus: row.PaymentStatus,
			PaidAt:        row.PaidAt,
		})
	}
	return payments, nil
}
