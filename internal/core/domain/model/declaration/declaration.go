package declaration

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrDeclarationIsNotConstructed is returned when a Declaration instance was
// not created through NewDeclaration or RestoreDeclaration.
var ErrDeclarationIsNotConstructed = errors.New(
	"Declaration must be created via NewDeclaration or RestoreDeclaration constructor",
)

// Declaration is the aggregate root of a supplier's hazardous-material
// declaration (MD or SDoC). It owns its HazardousMaterial line items: they
// are created, replaced, and persisted together with the declaration, so no
// reader ever observes a declaration without its intended rows.
//
// Supplier and ship references are denormalized from the owning request's
// lineage for query convenience.
//
// Declaration follows these invariants:
//   - Exactly one declaration exists per declaration request
//   - Status transitions follow the draft -> submitted -> terminal table
//   - The signature is a free-text attestation, not cryptographic
//   - Material rows keep their insertion order
type Declaration struct {
	id                  kernel.UUID
	requestID           kernel.UUID
	supplierID          kernel.UUID
	shipID              kernel.UUID
	declarationNumber   string
	title               string
	declarationType     Type
	itemName            string
	manufacturer        string
	modelNumber         string
	complianceStatus    ComplianceStatus
	certificationNumber string
	supplierSignature   string
	supplierName        string
	signatureDate       *time.Time
	submittedDate       *time.Time
	approvedDate        *time.Time
	approvedBy          *kernel.UUID
	status              Status
	rejectionReason     string
	materials           []*HazardousMaterial
	createdAt           time.Time

	guard kernel.ConstructorGuard
}

// NewDeclaration creates a draft declaration bound to a request, with the
// supplier and ship denormalized from the request's lineage.
func NewDeclaration(
	id, requestID, supplierID, shipID kernel.UUID,
	declarationNumber, title string,
	declarationType Type,
) (*Declaration, error) {
	decl := &Declaration{
		status:          StatusDraft,
		declarationType: declarationType,
		title:           title,
		createdAt:       time.Now().UTC(),
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		decl.setID(id),
		decl.setRequestID(requestID),
		decl.setSupplierID(supplierID),
		decl.setShipID(shipID),
		decl.setDeclarationNumber(declarationNumber),
	); err != nil {
		return nil, err
	}

	return decl, nil
}

// RestoreDeclaration reconstructs a Declaration from persistence with an
// already-validated status and its material rows in insertion order.
func RestoreDeclaration(
	id, requestID, supplierID, shipID kernel.UUID,
	declarationNumber, title string,
	declarationType Type,
	itemName, manufacturer, modelNumber string,
	complianceStatus ComplianceStatus,
	certificationNumber string,
	supplierSignature, supplierName string,
	signatureDate, submittedDate, approvedDate *time.Time,
	approvedBy *kernel.UUID,
	status Status,
	rejectionReason string,
	materials []*HazardousMaterial,
	createdAt time.Time,
) (*Declaration, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	decl, err := NewDeclaration(id, requestID, supplierID, shipID, declarationNumber, title, declarationType)
	if err != nil {
		return nil, err
	}

	decl.itemName = itemName
	decl.manufacturer = manufacturer
	decl.modelNumber = modelNumber
	decl.complianceStatus = complianceStatus
	decl.certificationNumber = certificationNumber
	decl.supplierSignature = supplierSignature
	decl.supplierName = supplierName
	decl.signatureDate = signatureDate
	decl.submittedDate = submittedDate
	decl.approvedDate = approvedDate
	decl.approvedBy = approvedBy
	decl.status = status
	decl.rejectionReason = rejectionReason
	decl.materials = materials
	decl.createdAt = createdAt
	return decl, nil
}

// Validate ensures the Declaration instance was properly constructed.
func (d *Declaration) Validate() error {
	if d == nil {
		return ErrDeclarationIsNotConstructed
	}
	return d.guard.Validate(ErrDeclarationIsNotConstructed)
}

// IsEqual compares two declarations by their unique identifiers.
func (d *Declaration) IsEqual(other *Declaration) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the declaration's unique identifier.
func (d *Declaration) ID() kernel.UUID {
	return d.id
}

// RequestID returns the owning declaration request's identifier.
func (d *Declaration) RequestID() kernel.UUID {
	return d.requestID
}

// SupplierID returns the submitting supplier's profile id.
func (d *Declaration) SupplierID() kernel.UUID {
	return d.supplierID
}

// ShipID returns the ship the declaration concerns.
func (d *Declaration) ShipID() kernel.UUID {
	return d.shipID
}

// DeclarationNumber returns the unique business document number.
func (d *Declaration) DeclarationNumber() string {
	return d.declarationNumber
}

// Title returns the document title, possibly empty.
func (d *Declaration) Title() string {
	return d.title
}

// DeclarationType returns the document kind (MD, SDoC, or unspecified).
func (d *Declaration) DeclarationType() Type {
	return d.declarationType
}

// ItemName returns the declared item's name, possibly empty.
func (d *Declaration) ItemName() string {
	return d.itemName
}

// Manufacturer returns the declared manufacturer, possibly empty.
func (d *Declaration) Manufacturer() string {
	return d.manufacturer
}

// ModelNumber returns the declared model number, possibly empty.
func (d *Declaration) ModelNumber() string {
	return d.modelNumber
}

// ComplianceStatus returns the declared compliance state.
func (d *Declaration) ComplianceStatus() ComplianceStatus {
	return d.complianceStatus
}

// CertificationNumber returns the certification reference, possibly empty.
func (d *Declaration) CertificationNumber() string {
	return d.certificationNumber
}

// SupplierSignature returns the free-text signature.
func (d *Declaration) SupplierSignature() string {
	return d.supplierSignature
}

// SupplierName returns the signer's name.
func (d *Declaration) SupplierName() string {
	return d.supplierName
}

// SignatureDate returns the signature date, or nil.
func (d *Declaration) SignatureDate() *time.Time {
	return d.signatureDate
}

// SubmittedDate returns the submission timestamp, or nil for drafts.
func (d *Declaration) SubmittedDate() *time.Time {
	return d.submittedDate
}

// ApprovedDate returns the review timestamp, or nil before review.
func (d *Declaration) ApprovedDate() *time.Time {
	return d.approvedDate
}

// ApprovedBy returns the reviewing operator's user id, or nil.
func (d *Declaration) ApprovedBy() *kernel.UUID {
	return d.approvedBy
}

// Status returns the current status of the declaration.
func (d *Declaration) Status() Status {
	return d.status
}

// RejectionReason returns the stored reason, empty unless rejected.
func (d *Declaration) RejectionReason() string {
	return d.rejectionReason
}

// Materials returns the hazardous material rows in insertion order.
func (d *Declaration) Materials() []*HazardousMaterial {
	return d.materials
}

// CreatedAt returns the record creation time.
func (d *Declaration) CreatedAt() time.Time {
	return d.createdAt
}

// Amend replaces the header fields of a declaration being resubmitted
// after rejection. The number must remain non-empty; an empty type falls
// back to unspecified.
func (d *Declaration) Amend(declarationNumber, title string, declarationType Type) error {
	if err := d.setDeclarationNumber(declarationNumber); err != nil {
		return err
	}

	d.title = title
	d.declarationType = declarationType
	return nil
}

// SetItemDetails updates the optional product identification fields.
func (d *Declaration) SetItemDetails(itemName, manufacturer, modelNumber string) {
	d.itemName = itemName
	d.manufacturer = manufacturer
	d.modelNumber = modelNumber
}

// SetCompliance updates the declared compliance state and certification
// reference.
func (d *Declaration) SetCompliance(status ComplianceStatus, certificationNumber string) {
	d.complianceStatus = status
	d.certificationNumber = certificationNumber
}

// Sign records the supplier's free-text attestation.
func (d *Declaration) Sign(signature, signerName string, signatureDate *time.Time) {
	d.supplierSignature = signature
	d.supplierName = signerName
	d.signatureDate = signatureDate
}

// ReplaceMaterials validates and attaches the given material rows,
// replacing any existing set. Row order is preserved.
func (d *Declaration) ReplaceMaterials(materials []*HazardousMaterial) error {
	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	d.materials = materials
	return nil
}

// MarkSubmitted moves the declaration to submitted at the given time.
// A rejected declaration may be resubmitted; its rejection reason and
// review fields are cleared.
func (d *Declaration) MarkSubmitted(at time.Time) error {
	newStatus, err := d.status.Submit()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.submittedDate = &at
	d.rejectionReason = ""
	d.approvedBy = nil
	d.approvedDate = nil
	return nil
}

// Approve moves the declaration to approved, recording the reviewing
// operator and timestamp. This is the terminal success path for the whole
// lineage; the caller cascades the request and purchase order statuses.
func (d *Declaration) Approve(approvedBy kernel.UUID, at time.Time) error {
	if err := approvedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Approve()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.approvedBy = &approvedBy
	d.approvedDate = &at
	return nil
}

// Reject moves the declaration to rejected, recording the reviewing
// operator, timestamp, and reason. The record remains in place so the
// supplier can resubmit.
func (d *Declaration) Reject(rejectedBy kernel.UUID, at time.Time, reason string) error {
	if err := rejectedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Reject()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.approvedBy = &rejectedBy
	d.approvedDate = &at
	d.rejectionReason = reason
	return nil
}

func (d *Declaration) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Declaration) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	d.requestID = requestID
	return nil
}

func (d *Declaration) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	d.supplierID = supplierID
	return nil
}

func (d *Declaration) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}
	d.shipID = shipID
	return nil
}

func (d *Declaration) setDeclarationNumber(declarationNumber string) error {
	if declarationNumber == "" {
		return errs.NewValueIsRequiredError("declaration_number")
	}
	d.declarationNumber = declarationNumber
	return nil
}
