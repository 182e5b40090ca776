package account

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through NewSupplier or RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier constructor")

// Supplier is a supplier company profile. Unlike Customer, the link to a
// user account is mandatory: a supplier only exists to act on declaration
// requests, which requires a login.
type Supplier struct {
	id             kernel.UUID
	userID         kernel.UUID
	companyName    string
	businessNumber string
	address        string
	contactPerson  string
	contactPhone   string
	contactEmail   string
	createdAt      time.Time

	guard kernel.ConstructorGuard
}

// NewSupplier creates a supplier profile bound to a user account.
func NewSupplier(
	id, userID kernel.UUID,
	companyName, businessNumber, address, contactPerson, contactPhone, contactEmail string,
) (*Supplier, error) {
	supplier := &Supplier{
		address:       address,
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		contactEmail:  contactEmail,
		createdAt:     time.Now().UTC(),
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplier.setID(id),
		supplier.setUserID(userID),
		supplier.setCompanyName(companyName),
		supplier.setBusinessNumber(businessNumber),
	); err != nil {
		return nil, err
	}

	return supplier, nil
}

// RestoreSupplier reconstructs a Supplier from persistence.
func RestoreSupplier(
	id, userID kernel.UUID,
	companyName, businessNumber, address, contactPerson, contactPhone, contactEmail string,
	createdAt time.Time,
) (*Supplier, error) {
	supplier, err := NewSupplier(id, userID, companyName, businessNumber, address, contactPerson, contactPhone, contactEmail)
	if err != nil {
		return nil, err
	}
	supplier.createdAt = createdAt
	return supplier, nil
}

// Validate ensures the Supplier instance was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the profile's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// UserID returns the linked user account id.
func (s *Supplier) UserID() kernel.UUID {
	return s.userID
}

// CompanyName returns the registered company name.
func (s *Supplier) CompanyName() string {
	return s.companyName
}

// BusinessNumber returns the unique business registration number.
func (s *Supplier) BusinessNumber() string {
	return s.businessNumber
}

// Address returns the company address, possibly empty.
func (s *Supplier) Address() string {
	return s.address
}

// ContactPerson returns the named contact person.
func (s *Supplier) ContactPerson() string {
	return s.contactPerson
}

// ContactPhone returns the contact phone number.
func (s *Supplier) ContactPhone() string {
	return s.contactPhone
}

// ContactEmail returns the contact email address.
func (s *Supplier) ContactEmail() string {
	return s.contactEmail
}

// CreatedAt returns the profile creation time.
func (s *Supplier) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Supplier) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("company_name")
	}
	s.companyName = companyName
	return nil
}

func (s *Supplier) setBusinessNumber(businessNumber string) error {
	if businessNumber == "" {
		return errs.NewValueIsRequiredError("business_number")
	}
	s.businessNumber = businessNumber
	return nil
}
