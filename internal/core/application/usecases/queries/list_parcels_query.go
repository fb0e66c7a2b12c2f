package queries

import (
	"context"
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

// ListParcelsQuery lists parcels newest first, optionally narrowed to one sender
// email and one delivery status. Empty filters match everything.
type ListParcelsQuery struct {
	senderEmail    string
	deliveryStatus string
	guard          guard.ConstructorGuard
}

func NewListParcelsQuery(senderEmail, deliveryStatus string) (ListParcelsQuery, error) {
	if deliveryStatus != "" {
		status, err := parcel.ParseDeliveryStatus(deliveryStatus)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		deliveryStatus = status.String()
	}

	return ListParcelsQuery{
		senderEmail:    strings.ToLower(strings.TrimSpace(senderEmail)),
		deliveryStatus: deliveryStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

type ListParcelsQueryHandler struct {
	db *gorm.DB
}

func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("parcels").Select(parcelColumns)
	if query.senderEmail != "" {
		tx = tx.Where("sender_email = ?", query.senderEmail)
	}
	if query.deliveryStatus != "" {
		tx = tx.Where("delivery_status = ?", query.deliveryStatus)
	}

	var rows []parcelRow
	if err := tx.Order("created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return parcelViews(rows)
}
