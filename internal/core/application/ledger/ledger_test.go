package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, e *tracking.Entry) (uint64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockTrackingRepository) ListByTrackingID(ctx context.Context, id kernel.TrackingID) ([]*tracking.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Entry), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func trackingID(t *testing.T) kernel.TrackingID {
	t.Helper()
	id, err := kernel.TrackingIDFromString("PRCL-20250101-ABC123")
	require.NoError(t, err)
	return id
}

func TestNew(t *testing.T) {
	_, err := ledger.New(nil, nil)
	require.Error(t, err)

	l, err := ledger.New(new(MockTrackingRepository), nil)
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestLedger_Append(t *testing.T) {
	ctx := t.Context()
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return the stored sequence number", func(t *testing.T) {
		repo := new(MockTrackingRepository)
		repo.On("Append", ctx, mock.MatchedBy(func(e *tracking.Entry) bool {
			return e.Status() == "driver_assigned" &&
				e.Details() == "driver assigned" &&
				e.CreatedAt().Equal(fixed)
		})).Return(uint64(42), nil).Once()

		l, err := ledger.New(repo, discardLogger())
		require.NoError(t, err)

		res := l.WithClock(func() time.Time { return fixed }).Append(ctx, trackingID(t), "driver_assigned")

		assert.True(t, res.OK())
		assert.Equal(t, uint64(42), res.EntryID)
		repo.AssertExpectations(t)
	})

	t.Run("should report storage failure without panicking", func(t *testing.T) {
		repo := new(MockTrackingRepository)
		repo.On("Append", ctx, mock.Anything).Return(uint64(0), errors.New("connection reset")).Once()

		l, err := ledger.New(repo, discardLogger())
		require.NoError(t, err)

		res := l.Append(ctx, trackingID(t), "parcel_paid")

		assert.False(t, res.OK())
		assert.EqualError(t, res.Err, "connection reset")
		assert.Zero(t, res.EntryID)
	})

	t.Run("should reject an empty tracking id before storage", func(t *testing.T) {
		repo := new(MockTrackingRepository)

		l, err := ledger.New(repo, discardLogger())
		require.NoError(t, err)

		res := l.Append(ctx, kernel.TrackingID{}, "parcel_created")

		require.ErrorIs(t, res.Err, kernel.ErrTrackingIDIsNotConstructed)
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestLedger_History(t *testing.T) {
	ctx := t.Context()
	id := trackingID(t)
	entries := []*tracking.Entry{
		tracking.RestoreEntry(1, id, "parcel_created", "parcel created", time.Now()),
		tracking.RestoreEntry(2, id, "parcel_paid", "parcel paid", time.Now()),
	}

	repo := new(MockTrackingRepository)
	repo.On("ListByTrackingID", ctx, id).Return(entries, nil).Once()

	l, err := ledger.New(repo, discardLogger())
	require.NoError(t, err)

	got, err := l.History(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestFailurePolicy_Settle(t *testing.T) {
	failed := ledger.AppendResult{Err: errors.New("disk full")}

	t.Run("tolerate swallows failure", func(t *testing.T) {
		require.NoError(t, ledger.Tolerate.Settle(failed))
	})

	t.Run("enforce wraps failure", func(t *testing.T) {
		err := ledger.Enforce.Settle(failed)

		require.ErrorIs(t, err, ledger.ErrLedgerAppendFailed)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("success settles to nil under any policy", func(t *testing.T) {
		require.NoError(t, ledger.Enforce.Settle(ledger.AppendResult{EntryID: 1}))
	})

	t.Run("zero value tolerates", func(t *testing.T) {
		var p ledger.FailurePolicy

		assert.Equal(t, "tolerate", p.String())
		assert.Equal(t, "enforce", ledger.Enforce.String())
	})
}
