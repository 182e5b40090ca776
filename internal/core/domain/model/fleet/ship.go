// Package fleet provides the Ship aggregate of the fleet registry. Each ship
// is owned by exactly one customer and is identified worldwide by its IMO
// number. Ships are soft-disabled via an active flag; the normal flow never
// hard-deletes them.
package fleet

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrShipIsNotConstructed is returned when a Ship instance was not created
// through NewShip or RestoreShip.
var ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip or RestoreShip constructor")

// Ship is a vessel owned by a customer.
//
// Ship follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Name and IMO number are required; the IMO number is unique system-wide
//   - Can only be created through NewShip or RestoreShip
type Ship struct {
	id           kernel.UUID
	customerID   kernel.UUID
	name         string
	imoNumber    string
	shipType     string
	grossTonnage float64
	yearBuilt    int
	isActive     bool
	createdAt    time.Time

	guard kernel.ConstructorGuard
}

// NewShip creates a new active Ship owned by the given customer.
func NewShip(id, customerID kernel.UUID, name, imoNumber string) (*Ship, error) {
	ship := &Ship{
		isActive:  true,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		ship.setID(id),
		ship.setCustomerID(customerID),
		ship.setName(name),
		ship.setIMONumber(imoNumber),
	); err != nil {
		return nil, err
	}

	return ship, nil
}

// RestoreShip reconstructs a Ship from persistence.
func RestoreShip(
	id, customerID kernel.UUID,
	name, imoNumber, shipType string,
	grossTonnage float64,
	yearBuilt int,
	isActive bool,
	createdAt time.Time,
) (*Ship, error) {
	ship, err := NewShip(id, customerID, name, imoNumber)
	if err != nil {
		return nil, err
	}

	ship.shipType = shipType
	ship.grossTonnage = grossTonnage
	ship.yearBuilt = yearBuilt
	ship.isActive = isActive
	ship.createdAt = createdAt
	return ship, nil
}

// Validate ensures the Ship instance was properly constructed.
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// IsEqual compares two ships by their unique identifiers.
func (s *Ship) IsEqual(other *Ship) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the ship's unique identifier.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the owning customer's profile id.
func (s *Ship) CustomerID() kernel.UUID {
	return s.customerID
}

// Name returns the ship's name.
func (s *Ship) Name() string {
	return s.name
}

// IMONumber returns the ship's unique international identifier.
func (s *Ship) IMONumber() string {
	return s.imoNumber
}

// ShipType returns the vessel type, possibly empty.
func (s *Ship) ShipType() string {
	return s.shipType
}

// GrossTonnage returns the registered gross tonnage, 0 if unknown.
func (s *Ship) GrossTonnage() float64 {
	return s.grossTonnage
}

// YearBuilt returns the build year, 0 if unknown.
func (s *Ship) YearBuilt() int {
	return s.yearBuilt
}

// IsActive reports whether the ship is enabled.
func (s *Ship) IsActive() bool {
	return s.isActive
}

// CreatedAt returns the registry entry creation time.
func (s *Ship) CreatedAt() time.Time {
	return s.createdAt
}

// SetParticulars updates the descriptive vessel data.
func (s *Ship) SetParticulars(shipType string, grossTonnage float64, yearBuilt int) {
	s.shipType = shipType
	s.grossTonnage = grossTonnage
	s.yearBuilt = yearBuilt
}

// Rename changes the ship name. The IMO number is immutable.
func (s *Ship) Rename(name string) error {
	return s.setName(name)
}

// Deactivate soft-disables the ship. The record and its descendants remain
// readable.
func (s *Ship) Deactivate() {
	s.isActive = false
}

// Activate re-enables a previously disabled ship.
func (s *Ship) Activate() {
	s.isActive = true
}

func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Ship) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = customerID
	return nil
}

func (s *Ship) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("ship_name")
	}
	s.name = name
	return nil
}

func (s *Ship) setIMONumber(imoNumber string) error {
	if imoNumber == "" {
		return errs.NewValueIsRequiredError("imo_number")
	}
	s.imoNumber = imoNumber
	return nil
}
