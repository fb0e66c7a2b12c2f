package kernel

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"courierdispatch/internal/pkg/errs"
)

const (
	trackingIDPrefix      = "PRCL"
	trackingIDDateLayout  = "20060102"
	trackingIDRandomBytes = 3
)

var trackingIDPattern = regexp.MustCompile(`^PRCL-\d{8}-[0-9A-F]{6}$`)

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("trackingId")

// TrackingID is the customer-facing parcel reference, PRCL-YYYYMMDD-XXXXXX.
//
// A parcel receives its tracking id exactly once, at creation; every ledger entry
// and payment row for that parcel carries the same value. Consumers never parse
// the format, they only compare values.
type TrackingID struct {
	value string
}

// GenerateTrackingID creates a tracking id dated today (UTC) with a
// cryptographically random suffix.
func GenerateTrackingID() (TrackingID, error) {
	return NewTrackingID(time.Now(), rand.Reader)
}

// NewTrackingID creates a tracking id dated at the given instant, reading the
// random suffix from r.
func NewTrackingID(at time.Time, r io.Reader) (TrackingID, error) {
	buf := make([]byte, trackingIDRandomBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return TrackingID{}, fmt.Errorf("read tracking id entropy: %w", err)
	}

	return TrackingID{
		value: fmt.Sprintf("%s-%s-%s",
			trackingIDPrefix,
			at.UTC().Format(trackingIDDateLayout),
			strings.ToUpper(hex.EncodeToString(buf)),
		),
	}, nil
}

// TrackingIDFromString restores a tracking id received from storage or a client.
// Only emptiness is checked.
func TrackingIDFromString(s string) (TrackingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TrackingID{}, ErrTrackingIDIsNotConstructed
	}
	return TrackingID{value: s}, nil
}

// IsWellFormedTrackingID reports whether s matches PRCL-YYYYMMDD-XXXXXX.
func IsWellFormedTrackingID(s string) bool {
	return trackingIDPattern.MatchString(s)
}

func (t TrackingID) String() string {
	return t.value
}

func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
