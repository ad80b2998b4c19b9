package deliveryrequest

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status of a delivery request.
//
//	Pending ──accept──> Accepted
//	   │
//	   └──reject──> Rejected ──resubmit──> Pending
type Status int

const (
	Unknown Status = iota
	Pending
	Rejected
	Accepted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Rejected: "Rejected",
		Accepted: "Accepted",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Accepted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
