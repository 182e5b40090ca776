package queries

import (
	"errors"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrGetHazardousMaterialsQueryIsNotConstructed = errors.New(
	"GetHazardousMaterialsQuery must be created via NewGetHazardousMaterialsQuery constructor",
)

// GetHazardousMaterialsQuery searches hazardous material rows across the
// declarations visible to the actor, optionally narrowed to one
// declaration or to names containing a substring. Surveyors use this to
// find where a substance appears across a fleet's paperwork.
type GetHazardousMaterialsQuery struct {
	actor         services.Actor
	declarationID *kernel.UUID
	materialName  string

	guard kernel.ConstructorGuard
}

// NewGetHazardousMaterialsQuery creates a material search query.
// declarationID and materialName are optional filters; materialName
// matches case-insensitively as a substring.
func NewGetHazardousMaterialsQuery(
	actor services.Actor,
	declarationID *kernel.UUID,
	materialName string,
) (GetHazardousMaterialsQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetHazardousMaterialsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	if declarationID != nil {
		if err := declarationID.Validate(); err != nil {
			return GetHazardousMaterialsQuery{}, err
		}
	}

	return GetHazardousMaterialsQuery{
		actor:         actor,
		declarationID: declarationID,
		materialName:  materialName,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHazardousMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetHazardousMaterialsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetHazardousMaterialsQuery) Actor() services.Actor {
	return q.actor
}

// DeclarationID returns the optional declaration filter.
func (q GetHazardousMaterialsQuery) DeclarationID() *kernel.UUID {
	return q.declarationID
}

// MaterialName returns the optional name substring filter.
func (q GetHazardousMaterialsQuery) MaterialName() string {
	return q.materialName
}

// GetHazardousMaterialsQueryResponse is one material row with its owning
// declaration's number for context.
type GetHazardousMaterialsQueryResponse struct {
	ID                kernel.UUID
	DeclarationID     kernel.UUID
	DeclarationNumber string
	MaterialName      string
	CASNumber         string
	ContentPercentage *float64
	LocationInProduct string
	Remarks           string
}
