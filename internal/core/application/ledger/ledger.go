// Package ledger records parcel lifecycle events in the append-only tracking ledger.
//
// A failed append never panics and never undoes the state change that triggered it.
// The failure is logged and handed back in an AppendResult; the caller's FailurePolicy
// decides whether it fails the triggering operation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/tracking"
	"courierdispatch/internal/core/ports"
)

var ErrLedgerAppendFailed = errors.New("tracking ledger append failed")

// AppendResult reports the outcome of one append.
type AppendResult struct {
	EntryID uint64
	Err     error
}

// OK reports whether the entry was written.
func (r AppendResult) OK() bool {
	return r.Err == nil
}

// FailurePolicy decides whether a failed append fails the operation that triggered it.
type FailurePolicy int

const (
	// Tolerate keeps the triggering operation successful; the failure is only logged.
	Tolerate FailurePolicy = iota
	// Enforce turns a failed append into an error of the triggering operation.
	Enforce
)

// Settle applies the policy to an append result.
func (p FailurePolicy) Settle(res AppendResult) error {
	if res.OK() || p != Enforce {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrLedgerAppendFailed, res.Err)
}

func (p FailurePolicy) String() string {
	if p == Enforce {
		return "enforce"
	}
	return "tolerate"
}

// Ledger appends to and reads from the tracking log.
type Ledger struct {
	repo   ports.TrackingRepository
	logger *slog.Logger
	now    func() time.Time
}

func New(repo ports.TrackingRepository, logger *slog.Logger) (*Ledger, error) {
	if repo == nil {
		return nil, errors.New("tracking repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		repo:   repo,
		logger: logger.With("component", "tracking-ledger"),
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source used for entry timestamps.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Append writes one entry for status under trackingID.
func (l *Ledger) Append(ctx context.Context, trackingID kernel.TrackingID, status string) AppendResult {
	entry, err := tracking.NewEntry(trackingID, status, l.now())
	if err != nil {
		l.logger.ErrorContext(ctx, "tracking entry rejected",
			"trackingId", trackingID.String(), "status", status, "error", err)
		return AppendResult{Err: err}
	}

	seq, err := l.repo.Append(ctx, entry)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to append tracking entry",
			"trackingId", trackingID.String(), "status", status, "error", err)
		return AppendResult{Err: err}
	}

	l.logger.DebugContext(ctx, "tracking entry appended",
		"trackingId", trackingID.String(), "status", status, "seq", seq)
	return AppendResult{EntryID: seq}
}

// History returns every entry for trackingID in insertion order.
func (l *Ledger) History(ctx context.Context, trackingID kernel.TrackingID) ([]*tracking.Entry, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	return l.repo.ListByTrackingID(ctx, trackingID)
}
