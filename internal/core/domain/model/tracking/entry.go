package tracking

import (
	"errors"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"
	"courierdispatch/internal/pkg/guard"
)

var (
	ErrStatusIsRequired      = errs.NewValueIsRequiredError("status")
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry is a single ledger record. Seq is zero until storage assigns it.
type Entry struct {
	seq        uint64
	trackingID kernel.TrackingID
	status     string
	details    string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// Details renders a status for people: underscores become spaces, hyphens are kept.
func Details(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}

// NewEntry builds an unsaved entry for status under trackingID.
func NewEntry(trackingID kernel.TrackingID, status string, createdAt time.Time) (*Entry, error) {
	status = strings.TrimSpace(status)

	var problems []error
	if err := trackingID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if status == "" {
		problems = append(problems, ErrStatusIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Entry{
		trackingID: trackingID,
		status:     status,
		details:    Details(status),
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry rebuilds a persisted entry.
func RestoreEntry(seq uint64, trackingID kernel.TrackingID, status, details string, createdAt time.Time) *Entry {
	return &Entry{
		seq:        seq,
		trackingID: trackingID,
		status:     status,
		details:    details,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) Seq() uint64                   { return e.seq }
func (e *Entry) TrackingID() kernel.TrackingID { return e.trackingID }
func (e *Entry) Status() string                { return e.status }
func (e *Entry) Details() string               { return e.details }
func (e *Entry) CreatedAt() time.Time          { return e.createdAt }
