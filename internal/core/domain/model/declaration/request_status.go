package declaration

import (
	"fmt"

	"ihm/internal/pkg/errs"
)

// RequestStatus represents the lifecycle state of a declaration request.
// It implements a state machine with defined transitions so the request
// mirrors the progress of the supplier's declaration.
//
// State transitions:
//
//	pending ──> submitted ──> {approved | rejected}
//	                ^                        │
//	                └────────────────────────┘
//	                     (resubmission)
//
// Approval and rejection are operator actions. Re-applying a terminal
// action to an already approved or rejected request is a conflict, not a
// silent no-op. A rejected request returns to submitted when the supplier
// resubmits its declaration.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized RequestStatus values.
	RequestStatusUnknown RequestStatus = iota

	// RequestStatusPending is the initial status: the request exists but
	// the supplier has not submitted a declaration yet.
	RequestStatusPending

	// RequestStatusSubmitted indicates the supplier submitted a declaration.
	RequestStatusSubmitted

	// RequestStatusApproved indicates an operator accepted the request.
	RequestStatusApproved

	// RequestStatusRejected indicates an operator rejected the request.
	// The record remains with its rejection reason; resubmission is allowed.
	RequestStatusRejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown:   "unknown",
		RequestStatusPending:   "pending",
		RequestStatusSubmitted: "submitted",
		RequestStatusApproved:  "approved",
		RequestStatusRejected:  "rejected",
	}
}

func getValidRequestStatusStrings() map[RequestStatus]string {
	//nolint:exhaustive // RequestStatusUnknown is intentionally excluded as it's invalid
	return map[RequestStatus]string{
		RequestStatusPending:   "pending",
		RequestStatusSubmitted: "submitted",
		RequestStatusApproved:  "approved",
		RequestStatusRejected:  "rejected",
	}
}

// ParseRequestStatus converts the wire representation into a RequestStatus.
func ParseRequestStatus(s string) (RequestStatus, error) {
	for status, str := range getValidRequestStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return RequestStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid declaration request status", s),
	)
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if _, ok := getValidRequestStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is approved or rejected.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// Submit transitions the status to RequestStatusSubmitted.
//
// Valid transitions:
//   - pending  -> submitted (first submission)
//   - rejected -> submitted (resubmission after rejection)
//
// Returns:
//   - (RequestStatusSubmitted, nil) on valid transition
//   - (0, error) if the request is already submitted or approved
func (s RequestStatus) Submit() (RequestStatus, error) {
	if s != RequestStatusPending && s != RequestStatusRejected {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration request in status %q cannot accept a submission", s.String()),
		)
	}
	return RequestStatusSubmitted, nil
}

// Approve transitions the status to RequestStatusApproved.
//
// Valid transitions:
//   - pending   -> approved (operator resolves the request directly)
//   - submitted -> approved
//
// Returns:
//   - (RequestStatusApproved, nil) on valid transition
//   - (0, error) if the request is already in a terminal status
func (s RequestStatus) Approve() (RequestStatus, error) {
	if s.IsTerminal() {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration request in status %q cannot be approved", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return RequestStatusApproved, nil
}

// Reject transitions the status to RequestStatusRejected.
//
// Valid transitions:
//   - pending   -> rejected
//   - submitted -> rejected
//
// Returns:
//   - (RequestStatusRejected, nil) on valid transition
//   - (0, error) if the request is already in a terminal status
func (s RequestStatus) Reject() (RequestStatus, error) {
	if s.IsTerminal() {
		return 0, errs.NewConflictError(
			fmt.Sprintf("declaration request in status %q cannot be rejected", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return RequestStatusRejected, nil
}
