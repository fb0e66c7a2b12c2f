package trackingrepo

import (
	"context"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
// It has no update or delete methods.
type GormTrackingRepository struct {
	db *gorm.DB
}

func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

func (r *GormTrackingRepository) Append(ctx context.Context, entry *tracking.Entry) (uint64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}
	return dto.Seq, nil
}

func (r *GormTrackingRepository) ListByTrackingID(ctx context.Context, trackingID kernel.TrackingID) ([]*tracking.Entry, error) {
	var dtos []TrackingDTO
	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", trackingID.String()).
		Order("seq ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*tracking.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
