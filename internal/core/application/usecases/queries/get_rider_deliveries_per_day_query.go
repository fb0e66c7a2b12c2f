package queries

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"

	"gorm.io/gorm"
)

const dayLayout = "2006-01-02"

var (
	ErrGetRiderDeliveriesPerDayQueryIsNotConstructed = errors.New(
		"GetRiderDeliveriesPerDayQuery must be created via NewGetRiderDeliveriesPerDayQuery constructor",
	)
)

// GetRiderDeliveriesPerDayQuery counts a rider's delivered parcels per UTC day.
// The day is taken from the parcel_delivered ledger entry, not from the parcel row.
type GetRiderDeliveriesPerDayQuery struct {
	riderEmail string
	guard      guard.ConstructorGuard
}

func NewGetRiderDeliveriesPerDayQuery(riderEmail string) (GetRiderDeliveriesPerDayQuery, error) {
	riderEmail = strings.ToLower(strings.TrimSpace(riderEmail))
	if riderEmail == "" {
		return GetRiderDeliveriesPerDayQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetRiderDeliveriesPerDayQuery{riderEmail: riderEmail, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderDeliveriesPerDayQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderDeliveriesPerDayQueryIsNotConstructed)
}

type DeliveriesPerDay struct {
	Date  string
	Count int
}

type deliveredEntryRow struct {
	TrackingID string
	CreatedAt  time.Time
}

type GetRiderDeliveriesPerDayQueryHandler struct {
	db *gorm.DB
}

func NewGetRiderDeliveriesPerDayQueryHandler(db *gorm.DB) GetRiderDeliveriesPerDayQueryHandler {
	return GetRiderDeliveriesPerDayQueryHandler{db: db}
}

// Handle returns days in ascending order. A parcel whose ledger holds several
// parcel_delivered entries counts once, on the day of the first.
func (h GetRiderDeliveriesPerDayQueryHandler) Handle(
	ctx context.Context,
	query GetRiderDeliveriesPerDayQuery,
) ([]DeliveriesPerDay, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var entries []deliveredEntryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT t.tracking_id, t.created_at
		FROM trackings t
		JOIN parcels p ON p.tracking_id = t.tracking_id
		WHERE p.rider_email = ?
			AND p.delivery_status = ?
			AND t.status = ?
		ORDER BY t.seq
	`, query.riderEmail, parcel.Delivered.String(), parcel.Delivered.String()).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	days := make([]DeliveriesPerDay, 0)
	index := make(map[string]int)
	for _, e := range entries {
		if _, ok := seen[e.TrackingID]; ok {
			continue
		}
		seen[e.TrackingID] = struct{}{}

		day := e.CreatedAt.UTC().Format(dayLayout)
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, DeliveriesPerDay{Date: day})
		}
		days[i].Count++
	}

	slices.SortFunc(days, func(a, b DeliveriesPerDay) int {
		return strings.Compare(a.Date, b.Date)
	})
	return days, nil
}
