package riderrepo

import (
	"context"
	"strings"

	"courierdispatch/internal/adapters/out/postgres/dberr"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"

	"gorm.io/gorm"
)

const paramRiderID = "riderId"

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db *gorm.DB
}

func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberr.Insert(err, "email", dto.Email)
}

func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Lookup(err, paramRiderID, id)
	}

	return toDomain(dto)
}

func (r *GormRiderRepository) GetByEmail(ctx context.Context, email string) (*rider.Rider, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		return nil, dberr.Lookup(err, "email", email)
	}

	return toDomain(dto)
}

func (r *GormRiderRepository) UpdateWorksStatus(ctx context.Context, id kernel.UUID, status rider.WorksStatus) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("works_status", status.String())
	return dberr.Affected(result, paramRiderID, id)
}

func (r *GormRiderRepository) UpdateReview(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"works_status": aggregate.WorksStatus().String(),
		})
	return dberr.Affected(result, paramRiderID, aggregate.ID())
}
