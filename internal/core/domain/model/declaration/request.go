package declaration

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

// Request is a DeclarationRequest: the customer's (or operator's) demand
// that a named supplier declare the hazardous materials for a purchase
// order. Exactly one request exists per purchase order; attempting to
// create a second is a conflict at the workflow level.
//
// Request follows these invariants:
//   - Must have valid purchase order and supplier references
//   - Status transitions follow the pending -> submitted -> terminal table
//   - Rejection stores a reason and leaves the record in place
type Request struct {
	id              kernel.UUID
	purchaseOrderID kernel.UUID
	supplierID      kernel.UUID
	requestDate     time.Time
	dueDate         *time.Time
	status          RequestStatus
	rejectionReason string
	createdBy       kernel.UUID
	createdAt       time.Time

	guard kernel.ConstructorGuard
}

// NewRequest creates a pending declaration request.
//
// Parameters:
//   - id: unique identifier for the request
//   - purchaseOrderID: the order the declaration is demanded for
//   - supplierID: the supplier expected to submit
//   - dueDate: optional submission deadline
//   - createdBy: the user creating the request
func NewRequest(
	id, purchaseOrderID, supplierID kernel.UUID,
	dueDate *time.Time,
	createdBy kernel.UUID,
) (*Request, error) {
	now := time.Now().UTC()
	request := &Request{
		status:      RequestStatusPending,
		requestDate: now,
		dueDate:     dueDate,
		createdAt:   now,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setID(id),
		request.setPurchaseOrderID(purchaseOrderID),
		request.setSupplierID(supplierID),
		request.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreRequest reconstructs a Request from persistence with an
// already-validated status.
func RestoreRequest(
	id, purchaseOrderID, supplierID kernel.UUID,
	requestDate time.Time,
	dueDate *time.Time,
	status RequestStatus,
	rejectionReason string,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request, err := NewRequest(id, purchaseOrderID, supplierID, dueDate, createdBy)
	if err != nil {
		return nil, err
	}

	request.requestDate = requestDate
	request.status = status
	request.rejectionReason = rejectionReason
	request.createdAt = createdAt
	return request, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// PurchaseOrderID returns the owning purchase order's identifier.
func (r *Request) PurchaseOrderID() kernel.UUID {
	return r.purchaseOrderID
}

// SupplierID returns the named supplier's profile id.
func (r *Request) SupplierID() kernel.UUID {
	return r.supplierID
}

// RequestDate returns the date the request was raised.
func (r *Request) RequestDate() time.Time {
	return r.requestDate
}

// DueDate returns the optional submission deadline, or nil.
func (r *Request) DueDate() *time.Time {
	return r.dueDate
}

// Status returns the current status of the request.
func (r *Request) Status() RequestStatus {
	return r.status
}

// RejectionReason returns the stored reason, empty unless rejected.
func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

// CreatedBy returns the id of the user who raised the request.
func (r *Request) CreatedBy() kernel.UUID {
	return r.createdBy
}

// CreatedAt returns the record creation time.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// IsOverdue reports whether the request is still awaiting submission past
// its due date.
func (r *Request) IsOverdue(now time.Time) bool {
	return r.dueDate != nil && r.status == RequestStatusPending && now.After(*r.dueDate)
}

// MarkSubmitted records that the supplier submitted a declaration.
// A rejected request returns to submitted, clearing the stored reason.
func (r *Request) MarkSubmitted() error {
	newStatus, err := r.status.Submit()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.rejectionReason = ""
	return nil
}

// Approve sets the request to approved. Independent of declaration
// approval: it represents the operator accepting the request-level process.
func (r *Request) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject sets the request to rejected and stores the free-text reason.
func (r *Request) Reject(reason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.rejectionReason = reason
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	r.purchaseOrderID = purchaseOrderID
	return nil
}

func (r *Request) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	r.supplierID = supplierID
	return nil
}

func (r *Request) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	r.createdBy = createdBy
	return nil
}
