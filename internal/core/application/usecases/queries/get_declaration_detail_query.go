package queries

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetDeclarationDetailQueryIsNotConstructed = errors.New(
	"GetDeclarationDetailQuery must be created via NewGetDeclarationDetailQuery constructor",
)

// GetDeclarationDetailQuery retrieves one declaration with its hazardous
// material rows and lineage context. Out-of-scope declarations answer
// not-found, never a hint that they exist.
type GetDeclarationDetailQuery struct {
	actor         services.Actor
	declarationID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetDeclarationDetailQuery creates a query for one declaration.
func NewGetDeclarationDetailQuery(
	actor services.Actor,
	declarationID kernel.UUID,
) (GetDeclarationDetailQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetDeclarationDetailQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if err := declarationID.Validate(); err != nil {
		return GetDeclarationDetailQuery{}, err
	}

	return GetDeclarationDetailQuery{
		actor:         actor,
		declarationID: declarationID,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationDetailQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDeclarationDetailQuery) Actor() services.Actor {
	return q.actor
}

// DeclarationID returns the declaration to fetch.
func (q GetDeclarationDetailQuery) DeclarationID() kernel.UUID {
	return q.declarationID
}

// DeclarationMaterialResponse is one hazardous material row of the detail
// view, in submission order.
type DeclarationMaterialResponse struct {
	ID                kernel.UUID
	MaterialName      string
	CASNumber         string
	ContentPercentage *float64
	LocationInProduct string
	Remarks           string
}

// GetDeclarationDetailQueryResponse is the full declaration view: header
// fields, review state, lineage context and material rows.
type GetDeclarationDetailQueryResponse struct {
	ID                  kernel.UUID
	RequestID           kernel.UUID
	PurchaseOrderID     kernel.UUID
	OrderNumber         string
	ShipID              kernel.UUID
	ShipName            string
	SupplierID          kernel.UUID
	SupplierCompany     string
	DeclarationNumber   string
	Title               string
	DeclarationType     string
	ItemName            string
	Manufacturer        string
	ModelNumber         string
	ComplianceStatus    string
	CertificationNumber string
	SupplierSignature   string
	SupplierName        string
	SignatureDate       *time.Time
	SubmittedDate       *time.Time
	ApprovedDate        *time.Time
	Status              string
	RejectionReason     string
	Materials           []DeclarationMaterialResponse
}
