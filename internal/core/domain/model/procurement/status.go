package procurement

import (
	"fmt"

	"ihm/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions so orders
// follow the declaration workflow in the correct sequence.
//
// State transitions:
//
//	pending ──> requested ──> completed
//
// A purchase order moves to requested when a declaration request is
// attached, and to completed when the linked declaration is approved.
// Rejection of the declaration leaves the order at requested, permitting
// resubmission. Any transition outside the table is a conflict error.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a newly created order,
	// before a declaration request is attached.
	StatusPending

	// StatusRequested indicates a declaration request exists for the order.
	StatusRequested

	// StatusCompleted indicates the linked declaration was approved.
	// This is a final state with no further transitions allowed.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusRequested: "requested",
		StatusCompleted: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusRequested: "requested",
		StatusCompleted: "completed",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid purchase order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Request transitions the status to StatusRequested.
//
// Valid transitions:
//   - pending -> requested (declaration request attached)
//
// Returns:
//   - (StatusRequested, nil) on valid transition
//   - (0, error) if a request already exists or the order is completed
func (s Status) Request() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewConflictError(
			fmt.Sprintf("purchase order in status %q cannot move to requested", s.String()),
		)
	}
	return StatusRequested, nil
}

// Complete transitions the status to StatusCompleted.
//
// Valid transitions:
//   - requested -> completed (linked declaration approved)
//
// Returns:
//   - (StatusCompleted, nil) on valid transition
//   - (0, error) if the order never had a request or is already completed
func (s Status) Complete() (Status, error) {
	if s != StatusRequested {
		return 0, errs.NewConflictError(
			fmt.Sprintf("purchase order in status %q cannot be completed", s.String()),
		)
	}
	return StatusCompleted, nil
}
