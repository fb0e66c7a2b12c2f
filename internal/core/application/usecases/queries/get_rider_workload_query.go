package queries

import (
	"context"
	"errors"
	"strings"

	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetRiderWorkloadQueryIsNotConstructed = errors.New(
		"GetRiderWorkloadQuery must be created via NewGetRiderWorkloadQuery constructor",
	)
)

// GetRiderWorkloadQuery lists the parcels carrying a rider's email, newest first.
//
// The status filter is binary. parcel_delivered selects the rider's completed
// parcels; any other value, including none, selects every parcel that is not
// delivered yet, which is the rider's active workload.
type GetRiderWorkloadQuery struct {
	riderEmail string
	delivered  bool
	guard      guard.ConstructorGuard
}

func NewGetRiderWorkloadQuery(riderEmail, deliveryStatus string) (GetRiderWorkloadQuery, error) {
	riderEmail = strings.ToLower(strings.TrimSpace(riderEmail))
	if riderEmail == "" {
		return GetRiderWorkloadQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}

	return GetRiderWorkloadQuery{
		riderEmail: riderEmail,
		delivered:  deliveryStatus == parcel.Delivered.String(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetRiderWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderWorkloadQueryIsNotConstructed)
}

type GetRiderWorkloadQueryHandler struct {
	db *gorm.DB
}

func NewGetRiderWorkloadQueryHandler(db *gorm.DB) GetRiderWorkloadQueryHandler {
	return GetRiderWorkloadQueryHandler{db: db}
}

func (h GetRiderWorkloadQueryHandler) Handle(ctx context.Context, query GetRiderWorkloadQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("parcels").Select(parcelColumns).
		Where("rider_email = ?", query.riderEmail)
	if query.delivered {
		tx = tx.Where("delivery_status = ?", parcel.Delivered.String())
	} else {
		tx = tx.Where("delivery_status <> ?", parcel.Delivered.String())
	}

	var rows []parcelRow
	if err := tx.Order("created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return parcelViews(rows)
}
