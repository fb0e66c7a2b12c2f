package commands

import (
	"context"
	"errors"
	"time"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
)

// trackingIDAttempts bounds regeneration when a fresh tracking id collides with a stored one.
const trackingIDAttempts = 3

// CreateParcelResult identifies the new parcel.
type CreateParcelResult struct {
	ParcelID   kernel.UUID
	TrackingID kernel.TrackingID
	Ledger     ledger.AppendResult
}

// CreateParcelCommandHandler inserts a parcel and opens its tracking history with
// a parcel_created entry.
type CreateParcelCommandHandler struct {
	store    ParcelRepoFactory
	ledger   TrackingLedger
	failures ledger.FailurePolicy

	newTrackingID func() (kernel.TrackingID, error)
	now           func() time.Time
}

func NewCreateParcelCommandHandler(
	store ParcelRepoFactory,
	trackingLedger TrackingLedger,
	failures ledger.FailurePolicy,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		store:         store,
		ledger:        trackingLedger,
		failures:      failures,
		newTrackingID: kernel.GenerateTrackingID,
		now:           time.Now,
	}
}

// WithTrackingIDGenerator replaces the tracking id source.
func (h CreateParcelCommandHandler) WithTrackingIDGenerator(gen func() (kernel.TrackingID, error)) CreateParcelCommandHandler {
	h.newTrackingID = gen
	return h
}

func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	repo := h.store.ParcelRepository()

	var created *parcel.Parcel
	for attempt := 1; ; attempt++ {
		trackingID, err := h.newTrackingID()
		if err != nil {
			return CreateParcelResult{}, err
		}

		p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, cmd.Details(), h.now())
		if err != nil {
			return CreateParcelResult{}, err
		}

		err = repo.Add(ctx, p)
		if err == nil {
			created = p
			break
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) || attempt == trackingIDAttempts {
			return CreateParcelResult{}, err
		}
	}

	res := CreateParcelResult{
		ParcelID:   created.ID(),
		TrackingID: created.TrackingID(),
		Ledger:     h.ledger.Append(ctx, created.TrackingID(), parcel.MarkerCreated.String()),
	}
	return res, h.failures.Settle(res.Ledger)
}
