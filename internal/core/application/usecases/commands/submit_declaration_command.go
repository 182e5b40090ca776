package commands

import (
	"errors"
	"fmt"
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
	"ihm/internal/pkg/errs"
)

var ErrSubmitDeclarationCommandIsNotConstructed = errors.New(
	"SubmitDeclarationCommand must be created via NewSubmitDeclarationCommand constructor",
)

// MaterialInput carries one hazardous material row of a submission.
// ContentPercentage, when present, must lie within [0, 100].
type MaterialInput struct {
	MaterialName      string
	CASNumber         string
	ContentPercentage *float64
	LocationInProduct string
	Remarks           string
}

// SubmitDeclarationCommand represents a supplier submitting a material
// declaration for a purchase order, together with its hazardous material
// rows. The submission is addressed by purchase order: the declaration
// request is located, or created, on the supplier's behalf.
type SubmitDeclarationCommand struct { //nolint:recvcheck //using for validation
	actor               services.Actor
	declarationID       kernel.UUID
	purchaseOrderID     kernel.UUID
	declarationNumber   string
	title               string
	declarationType     declaration.Type
	itemName            string
	manufacturer        string
	modelNumber         string
	complianceStatus    declaration.ComplianceStatus
	certificationNumber string
	supplierSignature   string
	supplierName        string
	signatureDate       *time.Time
	materials           []MaterialInput

	guard kernel.ConstructorGuard
}

// NewSubmitDeclarationCommand creates a command to submit a declaration.
// Validates the declaration number, title, and that every material row
// carries a name; percentage bounds are enforced by the domain model.
func NewSubmitDeclarationCommand(
	actor services.Actor,
	declarationID, purchaseOrderID kernel.UUID,
	declarationNumber, title string,
	declarationType declaration.Type,
	itemName, manufacturer, modelNumber string,
	complianceStatus declaration.ComplianceStatus,
	certificationNumber string,
	supplierSignature, supplierName string,
	signatureDate *time.Time,
	materials []MaterialInput,
) (SubmitDeclarationCommand, error) {
	cmd := SubmitDeclarationCommand{
		declarationType:     declarationType,
		itemName:            itemName,
		manufacturer:        manufacturer,
		modelNumber:         modelNumber,
		complianceStatus:    complianceStatus,
		certificationNumber: certificationNumber,
		supplierSignature:   supplierSignature,
		supplierName:        supplierName,
		signatureDate:       signatureDate,
		guard:               kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeclarationID(declarationID),
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setDeclarationNumber(declarationNumber),
		cmd.setTitle(title),
		cmd.setMaterials(materials),
	); err != nil {
		return SubmitDeclarationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeclarationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeclarationCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c SubmitDeclarationCommand) Actor() services.Actor {
	return c.actor
}

// DeclarationID returns the identifier assigned when a fresh declaration
// is created. Resubmissions reuse the rejected declaration's id.
func (c SubmitDeclarationCommand) DeclarationID() kernel.UUID {
	return c.declarationID
}

// PurchaseOrderID returns the order the declaration answers.
func (c SubmitDeclarationCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

// DeclarationNumber returns the unique business declaration number.
func (c SubmitDeclarationCommand) DeclarationNumber() string {
	return c.declarationNumber
}

// Title returns the declaration title.
func (c SubmitDeclarationCommand) Title() string {
	return c.title
}

// DeclarationType returns the declaration document type.
func (c SubmitDeclarationCommand) DeclarationType() declaration.Type {
	return c.declarationType
}

// ItemName returns the optional declared item name.
func (c SubmitDeclarationCommand) ItemName() string {
	return c.itemName
}

// Manufacturer returns the optional manufacturer.
func (c SubmitDeclarationCommand) Manufacturer() string {
	return c.manufacturer
}

// ModelNumber returns the optional model number.
func (c SubmitDeclarationCommand) ModelNumber() string {
	return c.modelNumber
}

// ComplianceStatus returns the declared compliance state.
func (c SubmitDeclarationCommand) ComplianceStatus() declaration.ComplianceStatus {
	return c.complianceStatus
}

// CertificationNumber returns the optional certification reference.
func (c SubmitDeclarationCommand) CertificationNumber() string {
	return c.certificationNumber
}

// SupplierSignature returns the free-text attestation.
func (c SubmitDeclarationCommand) SupplierSignature() string {
	return c.supplierSignature
}

// SupplierName returns the signing person's name.
func (c SubmitDeclarationCommand) SupplierName() string {
	return c.supplierName
}

// SignatureDate returns the optional attestation date.
func (c SubmitDeclarationCommand) SignatureDate() *time.Time {
	return c.signatureDate
}

// Materials returns the hazardous material rows in submission order.
func (c SubmitDeclarationCommand) Materials() []MaterialInput {
	return c.materials
}

func (c *SubmitDeclarationCommand) setActor(actor services.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	c.actor = actor
	return nil
}

func (c *SubmitDeclarationCommand) setDeclarationID(declarationID kernel.UUID) error {
	if err := declarationID.Validate(); err != nil {
		return err
	}

	c.declarationID = declarationID
	return nil
}

func (c *SubmitDeclarationCommand) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}

	c.purchaseOrderID = purchaseOrderID
	return nil
}

func (c *SubmitDeclarationCommand) setDeclarationNumber(declarationNumber string) error {
	if declarationNumber == "" {
		return errs.NewValueIsRequiredError("declarationNumber")
	}

	c.declarationNumber = declarationNumber
	return nil
}

func (c *SubmitDeclarationCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *SubmitDeclarationCommand) setMaterials(materials []MaterialInput) error {
	for i, m := range materials {
		if m.MaterialName == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("materials[%d].materialName", i))
		}
	}

	c.materials = materials
	return nil
}
