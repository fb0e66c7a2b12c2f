package queries

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrListRidersQueryIsNotConstructed = errors.New(
		"ListRidersQuery must be created via NewListRidersQuery constructor",
	)
)

// ListRidersQuery filters riders by approval status, works status and a served
// district. Empty filters match everything.
type ListRidersQuery struct {
	status      string
	worksStatus string
	district    string
	guard       guard.ConstructorGuard
}

func NewListRidersQuery(status, worksStatus, district string) (ListRidersQuery, error) {
	var errsList []error
	if status != "" {
		parsed, err := rider.ParseApprovalStatus(status)
		errsList = append(errsList, err)
		status = parsed.String()
	}
	if worksStatus != "" {
		parsed, err := rider.ParseWorksStatus(worksStatus)
		errsList = append(errsList, err)
		worksStatus = parsed.String()
	}
	if err := errors.Join(errsList...); err != nil {
		return ListRidersQuery{}, err
	}

	return ListRidersQuery{
		status:      status,
		worksStatus: worksStatus,
		district:    strings.TrimSpace(district),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

type RiderView struct {
	ID               kernel.UUID
	Name             string
	Email            string
	Phone            string
	Region           string
	Districts        []string
	NID              string
	BikeBrand        string
	BikeRegistration string
	Status           string
	WorksStatus      string
	CreatedAt        time.Time
}

type riderRow struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            string
	Region           string
	Districts        pq.StringArray
	NID              string `gorm:"column:nid"`
	BikeBrand        string
	BikeRegistration string
	Status           string
	WorksStatus      string
	CreatedAt        time.Time
}

type ListRidersQueryHandler struct {
	db *gorm.DB
}

func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle lists matching riders, newest first. Postgres matches the district inside
// the text[] column. Other dialects keep districts as an array literal, so the
// district filter runs on the decoded rows.
func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("riders").Select(
		"id, name, email, phone, region, districts, nid, bike_brand, bike_registration, " +
			"status, works_status, created_at",
	)
	if query.status != "" {
		tx = tx.Where("status = ?", query.status)
	}
	if query.worksStatus != "" {
		tx = tx.Where("works_status = ?", query.worksStatus)
	}

	inSQL := h.db.Dialector.Name() == "postgres"
	if query.district != "" && inSQL {
		tx = tx.Where("? = ANY(districts)", query.district)
	}

	var rows []riderRow
	if err := tx.Order("created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	riders := make([]RiderView, 0, len(rows))
	for _, row := range rows {
		if query.district != "" && !inSQL && !slices.Contains(row.Districts, query.district) {
			continue
		}

		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		riders = append(riders, RiderView{
			ID:               id,
			Name:             row.Name,
			Email:            row.Email,
			Phone:            row.Phone,
			Region:           row.Region,
			Districts:        []string(row.Districts),
			NID:              row.NID,
			BikeBrand:        row.BikeBrand,
			BikeRegistration: row.BikeRegistration,
			Status:           row.Status,
			WorksStatus:      row.WorksStatus,
			CreatedAt:        row.CreatedAt,
		})
	}
	return riders, nil
}
