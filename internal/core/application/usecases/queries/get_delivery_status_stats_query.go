package queries

import (
	"context"
	"errors"

	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetDeliveryStatusStatsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatusStatsQuery must be created via NewGetDeliveryStatusStatsQuery constructor",
	)
)

// GetDeliveryStatusStatsQuery counts parcels per raw delivery_status value.
type GetDeliveryStatusStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryStatusStatsQuery() GetDeliveryStatusStatsQuery {
	return GetDeliveryStatusStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryStatusStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusStatsQueryIsNotConstructed)
}

type DeliveryStatusCount struct {
	Status string
	Count  int64
}

type GetDeliveryStatusStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryStatusStatsQueryHandler(db *gorm.DB) GetDeliveryStatusStatsQueryHandler {
	return GetDeliveryStatusStatsQueryHandler{db: db}
}

// Handle returns one row per status present in the table, ordered by status.
// Statuses with no parcels are absent rather than zero.
func (h GetDeliveryStatusStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusStatsQuery,
) ([]DeliveryStatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]DeliveryStatusCount, 0)
	err := h.db.WithContext(ctx).
		Table("parcels").
		Select("delivery_status AS status, COUNT(*) AS count").
		Group("delivery_status").
		Order("delivery_status").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
