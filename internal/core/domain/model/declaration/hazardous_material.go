package declaration

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrHazardousMaterialIsNotConstructed is returned when a HazardousMaterial
// was not created through NewHazardousMaterial or RestoreHazardousMaterial.
var ErrHazardousMaterialIsNotConstructed = errors.New(
	"HazardousMaterial must be created via NewHazardousMaterial or RestoreHazardousMaterial constructor",
)

// HazardousMaterial is a line item of a declaration: one substance at one
// location in the product. Rows are not unique (the same material may
// legitimately appear at several product locations) and insertion order is
// preserved on reads.
type HazardousMaterial struct {
	id                kernel.UUID
	materialName      string
	casNumber         string
	contentPercentage *float64
	locationInProduct string
	remarks           string
	createdAt         time.Time

	guard kernel.ConstructorGuard
}

// NewHazardousMaterial creates a material line item. contentPercentage, when
// present, must lie within [0, 100]; it carries two-decimal precision.
func NewHazardousMaterial(
	id kernel.UUID,
	materialName, casNumber string,
	contentPercentage *float64,
	locationInProduct, remarks string,
) (*HazardousMaterial, error) {
	material := &HazardousMaterial{
		materialName:      materialName,
		casNumber:         casNumber,
		locationInProduct: locationInProduct,
		remarks:           remarks,
		createdAt:         time.Now().UTC(),
		guard:             kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		material.setID(id),
		material.setContentPercentage(contentPercentage),
	); err != nil {
		return nil, err
	}

	return material, nil
}

// RestoreHazardousMaterial reconstructs a material row from persistence.
func RestoreHazardousMaterial(
	id kernel.UUID,
	materialName, casNumber string,
	contentPercentage *float64,
	locationInProduct, remarks string,
	createdAt time.Time,
) (*HazardousMaterial, error) {
	material, err := NewHazardousMaterial(id, materialName, casNumber, contentPercentage, locationInProduct, remarks)
	if err != nil {
		return nil, err
	}
	material.createdAt = createdAt
	return material, nil
}

// Validate ensures the material was properly constructed.
func (m *HazardousMaterial) Validate() error {
	if m == nil {
		return ErrHazardousMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrHazardousMaterialIsNotConstructed)
}

// ID returns the row's unique identifier.
func (m *HazardousMaterial) ID() kernel.UUID {
	return m.id
}

// MaterialName returns the declared substance name, possibly empty.
func (m *HazardousMaterial) MaterialName() string {
	return m.materialName
}

// CASNumber returns the Chemical Abstracts Service registry number.
func (m *HazardousMaterial) CASNumber() string {
	return m.casNumber
}

// ContentPercentage returns the declared concentration, or nil if not
// provided.
func (m *HazardousMaterial) ContentPercentage() *float64 {
	return m.contentPercentage
}

// LocationInProduct returns the free-text location within the product.
func (m *HazardousMaterial) LocationInProduct() string {
	return m.locationInProduct
}

// Remarks returns the free-text remarks.
func (m *HazardousMaterial) Remarks() string {
	return m.remarks
}

// CreatedAt returns the row creation time.
func (m *HazardousMaterial) CreatedAt() time.Time {
	return m.createdAt
}

func (m *HazardousMaterial) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *HazardousMaterial) setContentPercentage(percentage *float64) error {
	if percentage != nil && (*percentage < 0 || *percentage > 100) {
		return errs.NewValueIsOutOfRangeError("content_percentage", *percentage, 0, 100)
	}
	m.contentPercentage = percentage
	return nil
}
