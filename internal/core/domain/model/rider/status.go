package rider

import (
	"fmt"
	"strings"

	"courierdispatch/internal/pkg/errs"
)

// ApprovalStatus is the outcome of an admin review.
type ApprovalStatus string

const (
	Pending  ApprovalStatus = "pending"
	Approved ApprovalStatus = "approved"
	Rejected ApprovalStatus = "rejected"
)

func ParseApprovalStatus(raw string) (ApprovalStatus, error) {
	s := ApprovalStatus(strings.TrimSpace(raw))
	switch s {
	case Pending, Approved, Rejected:
		return s, nil
	case "":
		return "", errs.NewValueIsRequiredError("status")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known rider status", raw))
	}
}

func (s ApprovalStatus) String() string {
	return string(s)
}

// WorksStatus says whether a rider is free to take a parcel.
type WorksStatus string

const (
	Available  WorksStatus = "available"
	InDelivery WorksStatus = "in_delivery"
)

func ParseWorksStatus(raw string) (WorksStatus, error) {
	s := WorksStatus(strings.TrimSpace(raw))
	switch s {
	case Available, InDelivery:
		return s, nil
	case "":
		return "", errs.NewValueIsRequiredError("worksStatus")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("worksStatus", fmt.Errorf("%q is not a known works status", raw))
	}
}

func (s WorksStatus) String() string {
	return string(s)
}
