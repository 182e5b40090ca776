package account

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is a ship-owner company profile. It may be linked to a user
// account, but the link is optional: profiles can exist before the company
// has a login. The business registration number is unique system-wide.
type Customer struct {
	id             kernel.UUID
	userID         *kernel.UUID
	companyName    string
	businessNumber string
	address        string
	contactPerson  string
	contactPhone   string
	contactEmail   string
	createdAt      time.Time

	guard kernel.ConstructorGuard
}

// NewCustomer creates a customer profile. userID may be nil for profiles
// without a linked account.
func NewCustomer(
	id kernel.UUID,
	userID *kernel.UUID,
	companyName, businessNumber, address, contactPerson, contactPhone, contactEmail string,
) (*Customer, error) {
	customer := &Customer{
		address:       address,
		contactPerson: contactPerson,
		contactPhone:  contactPhone,
		contactEmail:  contactEmail,
		createdAt:     time.Now().UTC(),
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setUserID(userID),
		customer.setCompanyName(companyName),
		customer.setBusinessNumber(businessNumber),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	userID *kernel.UUID,
	companyName, businessNumber, address, contactPerson, contactPhone, contactEmail string,
	createdAt time.Time,
) (*Customer, error) {
	customer, err := NewCustomer(id, userID, companyName, businessNumber, address, contactPerson, contactPhone, contactEmail)
	if err != nil {
		return nil, err
	}
	customer.createdAt = createdAt
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the profile's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the linked user account id, or nil if unlinked.
func (c *Customer) UserID() *kernel.UUID {
	return c.userID
}

// CompanyName returns the registered company name.
func (c *Customer) CompanyName() string {
	return c.companyName
}

// BusinessNumber returns the unique business registration number.
func (c *Customer) BusinessNumber() string {
	return c.businessNumber
}

// Address returns the company address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// ContactPerson returns the named contact person.
func (c *Customer) ContactPerson() string {
	return c.contactPerson
}

// ContactPhone returns the contact phone number.
func (c *Customer) ContactPhone() string {
	return c.contactPhone
}

// ContactEmail returns the contact email address.
func (c *Customer) ContactEmail() string {
	return c.contactEmail
}

// CreatedAt returns the profile creation time.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	c.userID = userID
	return nil
}

func (c *Customer) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("company_name")
	}
	c.companyName = companyName
	return nil
}

func (c *Customer) setBusinessNumber(businessNumber string) error {
	if businessNumber == "" {
		return errs.NewValueIsRequiredError("business_number")
	}
	c.businessNumber = businessNumber
	return nil
}
