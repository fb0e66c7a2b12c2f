package queries

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery fetches a single parcel by id.
//
// Example:
//
//	query, err := NewGetParcelQuery(id)
//	if err != nil {
//	    return err
//	}
//	view, err := NewGetParcelQueryHandler(db).Handle(ctx, query)
type GetParcelQuery struct {
	parcelID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	return GetParcelQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

type GetParcelQueryHandler struct {
	db *gorm.DB
}

func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no parcel has the id.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	var rows []parcelRow
	err := h.db.WithContext(ctx).
		Raw(`SELECT `+parcelColumns+` FROM parcels WHERE id = ?`, query.parcelID.String()).
		Scan(&rows).Error
	if err != nil {
		return ParcelView{}, err
	}
	if len(rows) == 0 {
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", query.parcelID)
	}

	return rows[0].toView()
}
