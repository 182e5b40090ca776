package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetDeclarationsQueryIsNotConstructed = errors.New(
	"GetDeclarationsQuery must be created via NewGetDeclarationsQuery or NewGetMyShipDeclarationsQuery constructor",
)

// GetDeclarationsQuery retrieves the declarations visible to the actor,
// optionally filtered by status, document type and ship. The customer's
// approved-declarations view of their fleet is this query with the
// approved status filter.
type GetDeclarationsQuery struct {
	actor           services.Actor
	status          *declaration.Status
	declarationType *declaration.Type
	shipID          *kernel.UUID
	selfScoped      bool

	guard kernel.ConstructorGuard
}

// NewGetDeclarationsQuery creates a query to list declarations. All
// filters are optional.
func NewGetDeclarationsQuery(
	actor services.Actor,
	status *declaration.Status,
	declarationType *declaration.Type,
	shipID *kernel.UUID,
) (GetDeclarationsQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetDeclarationsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDeclarationsQuery{}, err
		}
	}
	if shipID != nil {
		if err := shipID.Validate(); err != nil {
			return GetDeclarationsQuery{}, err
		}
	}

	return GetDeclarationsQuery{
		actor:           actor,
		status:          status,
		declarationType: declarationType,
		shipID:          shipID,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// NewGetMyShipDeclarationsQuery creates the customer's self-scoped view of
// their fleet's approved declarations. Roles without an own fleet are
// rejected by the handler with an authorization error instead of an empty
// result.
func NewGetMyShipDeclarationsQuery(actor services.Actor) (GetDeclarationsQuery, error) {
	approved := declaration.StatusApproved
	query, err := NewGetDeclarationsQuery(actor, &approved, nil, nil)
	if err != nil {
		return GetDeclarationsQuery{}, err
	}

	query.selfScoped = true
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDeclarationsQuery) Actor() services.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q GetDeclarationsQuery) Status() *declaration.Status {
	return q.status
}

// DeclarationType returns the optional document type filter.
func (q GetDeclarationsQuery) DeclarationType() *declaration.Type {
	return q.declarationType
}

// ShipID returns the optional ship filter.
func (q GetDeclarationsQuery) ShipID() *kernel.UUID {
	return q.shipID
}

// SelfScoped reports whether this is the my-ship-declarations view, which
// demands the customer capability rather than falling back to an empty
// scope.
func (q GetDeclarationsQuery) SelfScoped() bool {
	return q.selfScoped
}

// GetDeclarationsQueryResponse is one declaration row with its lineage
// denormalized for listing.
type GetDeclarationsQueryResponse struct {
	ID                kernel.UUID
	RequestID         kernel.UUID
	ShipID            kernel.UUID
	ShipName          string
	OrderNumber       string
	SupplierCompany   string
	DeclarationNumber string
	Title             string
	DeclarationType   string
	ComplianceStatus  string
	Status            string
	SubmittedDate     *time.Time
	ApprovedDate      *time.Time
}
