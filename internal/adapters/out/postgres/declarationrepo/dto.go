// Package declarationrepo provides data transfer objects and mapping
// functions for declaration request and declaration persistence. A
// declaration and its hazardous material rows are written as one unit;
// material rows carry a sequence column so submission order survives
// round trips.
package declarationrepo

import (
	"time"

	"ihm/internal/core/domain/model/declaration"
	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for declaration requests.
// The purchase order id carries a unique index backing the one request
// per order invariant.
type RequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	SupplierID      uuid.UUID `gorm:"type:uuid;index;not null"`
	RequestDate     time.Time
	DueDate         *time.Time
	Status          string `gorm:"index;not null"`
	RejectionReason string
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for declaration requests.
func (RequestDTO) TableName() string {
	return "declaration_requests"
}

// DeclarationDTO represents the database structure for declarations. The
// request id carries a unique index backing the one declaration per
// request invariant.
type DeclarationDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	SupplierID          uuid.UUID `gorm:"type:uuid;index;not null"`
	ShipID              uuid.UUID `gorm:"type:uuid;index;not null"`
	DeclarationNumber   string    `gorm:"uniqueIndex;not null"`
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
	ApprovedBy          *uuid.UUID `gorm:"type:uuid"`
	Status              string     `gorm:"index;not null"`
	RejectionReason     string
	CreatedAt           time.Time
}

// TableName specifies the database table name for declarations.
func (DeclarationDTO) TableName() string {
	return "declarations"
}

// HazardousMaterialDTO represents one material row of a declaration. Seq
// is the zero-based position within the submission.
type HazardousMaterialDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeclarationID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Seq               int       `gorm:"not null"`
	MaterialName      string    `gorm:"index;not null"`
	CASNumber         string    `gorm:"column:cas_number"`
	ContentPercentage *float64
	LocationInProduct string
	Remarks           string
	CreatedAt         time.Time
}

// TableName specifies the database table name for hazardous materials.
func (HazardousMaterialDTO) TableName() string {
	return "hazardous_materials"
}

func requestFromDomain(request *declaration.Request) RequestDTO {
	return RequestDTO{
		ID:              request.ID().Bytes(),
		PurchaseOrderID: request.PurchaseOrderID().Bytes(),
		SupplierID:      request.SupplierID().Bytes(),
		RequestDate:     request.RequestDate(),
		DueDate:         request.DueDate(),
		Status:          request.Status().String(),
		RejectionReason: request.RejectionReason(),
		CreatedBy:       request.CreatedBy().Bytes(),
		CreatedAt:       request.CreatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*declaration.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	purchaseOrderID, err := kernel.UUIDFromBytes(dto.PurchaseOrderID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := declaration.ParseRequestStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return declaration.RestoreRequest(
		id, purchaseOrderID, supplierID,
		dto.RequestDate,
		dto.DueDate,
		status,
		dto.RejectionReason,
		createdBy,
		dto.CreatedAt,
	)
}

func declarationFromDomain(decl *declaration.Declaration) DeclarationDTO {
	var approvedBy *uuid.UUID
	if id := decl.ApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedBy = &raw
	}

	return DeclarationDTO{
		ID:                  decl.ID().Bytes(),
		RequestID:           decl.RequestID().Bytes(),
		SupplierID:          decl.SupplierID().Bytes(),
		ShipID:              decl.ShipID().Bytes(),
		DeclarationNumber:   decl.DeclarationNumber(),
		Title:               decl.Title(),
		DeclarationType:     decl.DeclarationType().String(),
		ItemName:            decl.ItemName(),
		Manufacturer:        decl.Manufacturer(),
		ModelNumber:         decl.ModelNumber(),
		ComplianceStatus:    decl.ComplianceStatus().String(),
		CertificationNumber: decl.CertificationNumber(),
		SupplierSignature:   decl.SupplierSignature(),
		SupplierName:        decl.SupplierName(),
		SignatureDate:       decl.SignatureDate(),
		SubmittedDate:       decl.SubmittedDate(),
		ApprovedDate:        decl.ApprovedDate(),
		ApprovedBy:          approvedBy,
		Status:              decl.Status().String(),
		RejectionReason:     decl.RejectionReason(),
		CreatedAt:           decl.CreatedAt(),
	}
}

func materialsFromDomain(decl *declaration.Declaration) []HazardousMaterialDTO {
	materials := decl.Materials()
	dtos := make([]HazardousMaterialDTO, 0, len(materials))
	for i, m := range materials {
		dtos = append(dtos, HazardousMaterialDTO{
			ID:                m.ID().Bytes(),
			DeclarationID:     decl.ID().Bytes(),
			Seq:               i,
			MaterialName:      m.MaterialName(),
			CASNumber:         m.CASNumber(),
			ContentPercentage: m.ContentPercentage(),
			LocationInProduct: m.LocationInProduct(),
			Remarks:           m.Remarks(),
			CreatedAt:         m.CreatedAt(),
		})
	}
	return dtos
}

func declarationToDomain(dto DeclarationDTO, materialDTOs []HazardousMaterialDTO) (*declaration.Declaration, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	shipID, err := kernel.UUIDFromBytes(dto.ShipID[:])
	if err != nil {
		return nil, err
	}

	var approvedBy *kernel.UUID
	if dto.ApprovedBy != nil {
		aID, approvedErr := kernel.UUIDFromBytes((*dto.ApprovedBy)[:])
		if approvedErr != nil {
			return nil, approvedErr
		}
		approvedBy = &aID
	}

	declarationType, err := declaration.ParseType(dto.DeclarationType)
	if err != nil {
		return nil, err
	}

	complianceStatus, err := declaration.ParseComplianceStatus(dto.ComplianceStatus)
	if err != nil {
		return nil, err
	}

	status, err := declaration.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	materials := make([]*declaration.HazardousMaterial, 0, len(materialDTOs))
	for _, m := range materialDTOs {
		material, materialErr := materialToDomain(m)
		if materialErr != nil {
			return nil, materialErr
		}
		materials = append(materials, material)
	}

	return declaration.RestoreDeclaration(
		id, requestID, supplierID, shipID,
		dto.DeclarationNumber, dto.Title,
		declarationType,
		dto.ItemName, dto.Manufacturer, dto.ModelNumber,
		complianceStatus,
		dto.CertificationNumber,
		dto.SupplierSignature, dto.SupplierName,
		dto.SignatureDate, dto.SubmittedDate, dto.ApprovedDate,
		approvedBy,
		status,
		dto.RejectionReason,
		materials,
		dto.CreatedAt,
	)
}

func materialToDomain(dto HazardousMaterialDTO) (*declaration.HazardousMaterial, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return declaration.RestoreHazardousMaterial(
		id,
		dto.MaterialName, dto.CASNumber,
		dto.ContentPercentage,
		dto.LocationInProduct, dto.Remarks,
		dto.CreatedAt,
	)
}
