package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Processing ──assign──> Accepted ──> Shifted ──> OutForDelivery ──> Delivered
//	     │                    │            │               │
//	     └────────────────────┴────cancel──┴───────────────┴──> Cancelled
//
// Processing → Accepted happens only through assignment; the delivery person
// drives the remaining forward steps one at a time. Delivered and Cancelled
// are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Processing
	Accepted
	Shifted
	OutForDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Processing:     "Processing",
		Accepted:       "Accepted",
		Shifted:        "Shifted",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getNextStatus is the forward progression driven by the delivery person.
func getNextStatus() map[Status]Status {
	//nolint:exhaustive // only statuses with a successor are listed
	return map[Status]Status{
		Accepted:       Shifted,
		Shifted:        OutForDelivery,
		OutForDelivery: Delivered,
	}
}

// ParseStatus accepts the canonical names case-insensitively, plus the
// spaced form "Out for Delivery". Anything else yields Unknown and false.
func ParseStatus(raw string) (Status, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	for s, name := range getStatusStrings() {
		if s != Unknown && strings.ToLower(name) == normalized {
			return s, true
		}
	}
	return Unknown, false
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
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

// IsTerminal reports whether no further mutation is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsAssigned reports whether the status requires a delivery person.
func (s Status) IsAssigned() bool {
	return s >= Accepted && s <= Delivered
}

// Next returns the single legal successor reachable by advancing.
func (s Status) Next() (Status, bool) {
	next, ok := getNextStatus()[s]
	return next, ok
}

// Advance checks that requested is exactly the next status and returns it.
// The error reports both the attempted value and the allowed one.
func (s Status) Advance(requested string) (Status, error) {
	next, hasNext := s.Next()
	target, known := ParseStatus(requested)
	if !hasNext {
		return 0, errs.NewInvalidTransitionError(s.String(), requested)
	}
	if !known || target != next {
		return 0, errs.NewInvalidTransitionError(s.String(), requested, next.String())
	}
	return next, nil
}

// Assign moves Processing to Accepted. Any other source status means the
// order was already claimed or closed, which is reported as a conflict.
func (s Status) Assign() (Status, error) {
	if s != Processing {
		return 0, errs.NewConflictError("order", fmt.Sprintf("cannot assign an order in status %s", s))
	}
	return Accepted, nil
}

// Cancel moves any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveDeliveryPerson checks that an assignee is present exactly
// for the assigned statuses.
func (s Status) ValidateCanHaveDeliveryPerson(assigned bool) error {
	if assigned && !s.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery person", s),
		)
	}
	if !assigned && s.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery person", s),
		)
	}
	return nil
}
