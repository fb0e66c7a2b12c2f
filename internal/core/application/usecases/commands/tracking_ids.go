package commands

import (
	"fmt"
	"strings"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/pkg/errs"
)

// ledgerTrackingID picks the tracking id a lifecycle ledger entry is written under.
// An empty caller value means the parcel's own id. A different value is rejected so
// that every entry for a parcel carries its creation-time id.
func ledgerTrackingID(p *parcel.Parcel, supplied string) (kernel.TrackingID, error) {
	supplied = strings.TrimSpace(supplied)
	if supplied == "" || supplied == p.TrackingID().String() {
		return p.TrackingID(), nil
	}
	return kernel.TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
		"trackingId",
		fmt.Errorf("%q does not belong to parcel %s", supplied, p.ID()),
	)
}
