package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetDeclarationRequestsQueryIsNotConstructed = errors.New(
	"GetDeclarationRequestsQuery must be created via NewGetDeclarationRequestsQuery or NewGetPendingRequestsQuery constructor",
)

// GetDeclarationRequestsQuery retrieves the declaration requests visible to
// the actor, optionally filtered by status. The supplier's pending work
// queue is this query with the pending status filter.
type GetDeclarationRequestsQuery struct {
	actor      services.Actor
	status     *declaration.RequestStatus
	selfScoped bool

	guard kernel.ConstructorGuard
}

// NewGetDeclarationRequestsQuery creates a query to list declaration
// requests. status is an optional filter.
func NewGetDeclarationRequestsQuery(
	actor services.Actor,
	status *declaration.RequestStatus,
) (GetDeclarationRequestsQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetDeclarationRequestsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDeclarationRequestsQuery{}, err
		}
	}

	return GetDeclarationRequestsQuery{
		actor:  actor,
		status: status,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// NewGetPendingRequestsQuery creates the supplier's self-scoped pending
// work queue. Roles without such a queue are rejected by the handler with
// an authorization error instead of an empty result.
func NewGetPendingRequestsQuery(actor services.Actor) (GetDeclarationRequestsQuery, error) {
	pending := declaration.RequestStatusPending
	query, err := NewGetDeclarationRequestsQuery(actor, &pending)
	if err != nil {
		return GetDeclarationRequestsQuery{}, err
	}

	query.selfScoped = true
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationRequestsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDeclarationRequestsQuery) Actor() services.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q GetDeclarationRequestsQuery) Status() *declaration.RequestStatus {
	return q.status
}

// SelfScoped reports whether this is the pending work queue, which demands
// the supplier capability rather than falling back to an empty scope.
func (q GetDeclarationRequestsQuery) SelfScoped() bool {
	return q.selfScoped
}

// GetDeclarationRequestsQueryResponse is one declaration request row with
// its order, ship and supplier context denormalized for listing.
type GetDeclarationRequestsQueryResponse struct {
	ID              kernel.UUID
	PurchaseOrderID kernel.UUID
	OrderNumber     string
	OrderTitle      string
	ShipName        string
	SupplierID      kernel.UUID
	SupplierCompany string
	RequestDate     time.Time
	DueDate         *time.Time
	Status          string
	RejectionReason string
}
