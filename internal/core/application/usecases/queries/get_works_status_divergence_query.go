package queries

import (
	"context"
	"errors"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetWorksStatusDivergenceQueryIsNotConstructed = errors.New(
		"GetWorksStatusDivergenceQuery must be created via NewGetWorksStatusDivergenceQuery constructor",
	)
)

// GetWorksStatusDivergenceQuery finds riders whose stored works status disagrees
// with the parcels assigned to them. A rider should be in_delivery exactly when
// one undelivered parcel carries their id.
type GetWorksStatusDivergenceQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorksStatusDivergenceQuery() GetWorksStatusDivergenceQuery {
	return GetWorksStatusDivergenceQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWorksStatusDivergenceQuery) Validate() error {
	return q.guard.Validate(ErrGetWorksStatusDivergenceQueryIsNotConstructed)
}

type WorksStatusDivergence struct {
	RiderID       kernel.UUID
	Email         string
	WorksStatus   string
	ActiveParcels int64
}

type divergenceRow struct {
	ID            uuid.UUID
	Email         string
	WorksStatus   string
	ActiveParcels int64
}

type GetWorksStatusDivergenceQueryHandler struct {
	db *gorm.DB
}

func NewGetWorksStatusDivergenceQueryHandler(db *gorm.DB) GetWorksStatusDivergenceQueryHandler {
	return GetWorksStatusDivergenceQueryHandler{db: db}
}

func (h GetWorksStatusDivergenceQueryHandler) Handle(
	ctx context.Context,
	query GetWorksStatusDivergenceQuery,
) ([]WorksStatusDivergence, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []divergenceRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT r.id, r.email, r.works_status, COUNT(p.id) AS active_parcels
		FROM riders r
		LEFT JOIN parcels p ON p.rider_id = r.id AND p.delivery_status <> ?
		GROUP BY r.id, r.email, r.works_status
		ORDER BY r.email
	`, parcel.Delivered.String()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	divergent := make([]WorksStatusDivergence, 0)
	for _, row := range rows {
		if consistent(row.WorksStatus, row.ActiveParcels) {
			continue
		}
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		divergent = append(divergent, WorksStatusDivergence{
			RiderID:       id,
			Email:         row.Email,
			WorksStatus:   row.WorksStatus,
			ActiveParcels: row.ActiveParcels,
		})
	}
	return divergent, nil
}

func consistent(worksStatus string, active int64) bool {
	switch worksStatus {
	case rider.InDelivery.String():
		return active == 1
	case rider.Available.String():
		return active == 0
	default:
		return false
	}
}
