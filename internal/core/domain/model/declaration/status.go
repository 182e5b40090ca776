package declaration

import (
	"fmt"

	"ihm/internal/pkg/errs"
)

// Status represents the lifecycle state of a declaration.
//
// State transitions:
//
//	draft ──> submitted ──> {approved | rejected}
//	              ^                        │
//	              └────────────────────────┘
//	                   (resubmission)
//
// Status moves only forward except explicit rejection, which is terminal
// but not destructive: the record remains with its rejection reason and may
// be resubmitted. Re-applying approve or reject to a terminal record is a
// conflict.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a declaration under preparation.
	StatusDraft

	// StatusSubmitted indicates the supplier has submitted the declaration
	// for operator review.
	StatusSubmitted

	// StatusApproved indicates an operator approved the declaration.
	// This is the terminal success state of the whole lineage.
	StatusApproved

	// StatusRejected indicates an operator rejected the declaration.
	StatusRejected
)

func getDeclarationStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusSubmitted: "submitted",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
	}
}

func getValidDeclarationStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusSubmitted: "submitted",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidDeclarationStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid declaration status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidDeclarationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values.
func (s Status) String() string {
	if str, ok := getDeclarationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is approved or rejected.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Submit transitions the status to StatusSubmitted.
//
// Valid transitions:
//   - draft    -> submitted (first submission)
//   - rejected -> submitted (resubmission after rejection)
//
// Returns:
//   - (StatusSubmitted, nil) on valid transition
//   - (0, error) if the declaration is already submitted or approved
func (s Status) Submit() (Status, error) {
	if s != StatusDraft && s != StatusRejected {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration in status %q cannot be submitted", s.String()),
		)
	}
	return StatusSubmitted, nil
}

// Approve transitions the status to StatusApproved.
//
// Valid transitions:
//   - submitted -> approved
//
// Returns:
//   - (StatusApproved, nil) on valid transition
//   - (0, error) for drafts or already-terminal records
func (s Status) Approve() (Status, error) {
	if s != StatusSubmitted {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration in status %q cannot be approved", s.String()),
		)
	}
	return StatusApproved, nil
}

// Reject transitions the status to StatusRejected.
//
// Valid transitions:
//   - submitted -> rejected
//
// Returns:
//   - (StatusRejected, nil) on valid transition
//   - (0, error) for drafts or already-terminal records
func (s Status) Reject() (Status, error) {
	if s != StatusSubmitted {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration in status %q cannot be rejected", s.String()),
		)
	}
	return StatusRejected, nil
}
