package commands

import (
	"errors"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a new user account.
// The password is carried in plaintext and hashed by the handler; it never
// reaches the domain model.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	username        string
	email           string
	password        string
	passwordConfirm string
	role            account.Role
	companyName     string
	businessNumber  string
	address         string
	contactPhone    string

	guard kernel.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that credentials are present, the confirmation matches the
// password, and the role is one of the known roles. Customers and
// suppliers get a company profile, so their company name and business
// number are mandatory; operators carry no profile.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password, passwordConfirm string,
	role account.Role,
	companyName, businessNumber, address, contactPhone string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		address:      address,
		contactPhone: contactPhone,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password, passwordConfirm),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	if err := cmd.setCompanyProfile(companyName, businessNumber); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the unique login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the user's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// CompanyName returns the company name. Empty only for operators.
func (c RegisterUserCommand) CompanyName() string {
	return c.companyName
}

// BusinessNumber returns the company registration number. Empty only
// for operators.
func (c RegisterUserCommand) BusinessNumber() string {
	return c.businessNumber
}

// Address returns the optional company address.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// ContactPhone returns the optional contact phone.
func (c RegisterUserCommand) ContactPhone() string {
	return c.contactPhone
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password, passwordConfirm string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if password != passwordConfirm {
		return errs.NewValueIsInvalidError("passwordConfirm")
	}

	c.password = password
	c.passwordConfirm = passwordConfirm
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setCompanyProfile(companyName, businessNumber string) error {
	if c.role != account.RoleOperator {
		if companyName == "" {
			return errs.NewValueIsRequiredError("companyName")
		}
		if businessNumber == "" {
			return errs.NewValueIsRequiredError("businessNumber")
		}
	}

	c.companyName = companyName
	c.businessNumber = businessNumber
	return nil
}
