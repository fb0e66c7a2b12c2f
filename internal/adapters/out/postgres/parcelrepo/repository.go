package parcelrepo

import (
	"context"

	"courierdispatch/internal/adapters/out/postgres/dberr"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

const paramParcelID = "parcelId"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberr.Insert(err, "trackingId", dto.TrackingID)
}

func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Lookup(err, paramParcelID, id)
	}

	return toDomain(dto)
}

func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ParcelDTO{})
	return dberr.Affected(result, paramParcelID, id)
}

func (r *GormParcelRepository) UpdateDeliveryStatus(ctx context.Context, aggregate *parcel.Parcel) error {
	return r.updateColumns(ctx, aggregate, map[string]any{
		"delivery_status": aggregate.DeliveryStatus().String(),
	})
}

func (r *GormParcelRepository) UpdateRiderAssignment(ctx context.Context, aggregate *parcel.Parcel) error {
	dto := fromDomain(aggregate)
	return r.updateColumns(ctx, aggregate, map[string]any{
		"delivery_status": dto.DeliveryStatus,
		"rider_id":        dto.RiderID,
		"rider_name":      dto.RiderName,
		"rider_email":     dto.RiderEmail,
	})
}

func (r *GormParcelRepository) UpdatePaymentState(ctx context.Context, aggregate *parcel.Parcel) error {
	return r.updateColumns(ctx, aggregate, map[string]any{
		"payment_status":  aggregate.PaymentStatus().String(),
		"delivery_status": aggregate.DeliveryStatus().String(),
	})
}

// updateColumns writes only the named columns; other columns keep whatever a
// concurrent writer stored.
func (r *GormParcelRepository) updateColumns(ctx context.Context, aggregate *parcel.Parcel, columns map[string]any) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(columns)
	return dberr.Affected(result, paramParcelID, aggregate.ID())
}
