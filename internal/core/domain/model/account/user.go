package account

import (
	"errors"
	"time"

	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is an authenticated identity with an immutable role tag.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Username and email are required
//   - Role is a valid closed-enum value and never changes post-creation
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role
	companyName  string
	contactPhone string
	isActive     bool
	createdAt    time.Time

	guard kernel.ConstructorGuard
}

// NewUser creates a new active User with validation. The password hash is
// produced by the auth layer; the domain stores it opaquely.
func NewUser(id kernel.UUID, username, email, passwordHash string, role Role) (*User, error) {
	user := &User{
		isActive:  true,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setEmail(email),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	user.passwordHash = passwordHash
	return user, nil
}

// RestoreUser reconstructs a User from persistence without re-running
// creation-time defaults.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	role Role,
	companyName, contactPhone string,
	isActive bool,
	createdAt time.Time,
) (*User, error) {
	user := &User{
		passwordHash: passwordHash,
		companyName:  companyName,
		contactPhone: contactPhone,
		isActive:     isActive,
		createdAt:    createdAt,
		guard:        kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setEmail(email),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's immutable role tag.
func (u *User) Role() Role {
	return u.role
}

// CompanyName returns the display company name, possibly empty.
func (u *User) CompanyName() string {
	return u.companyName
}

// ContactPhone returns the contact phone, possibly empty.
func (u *User) ContactPhone() string {
	return u.contactPhone
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// SetCompanyInfo updates the display metadata. Role and credentials are
// deliberately not updatable here.
func (u *User) SetCompanyInfo(companyName, contactPhone string) {
	u.companyName = companyName
	u.contactPhone = contactPhone
}

// Deactivate soft-disables the account.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
