// Package accountrepo provides data transfer objects and mapping functions
// for account persistence: user accounts and the customer and supplier
// company profiles linked to them.
package accountrepo

import (
	"time"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Username and email carry unique indexes; registration races surface as
// duplicate key errors and map to conflicts.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"index;not null"`
	CompanyName  string
	ContactPhone string
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// CustomerDTO represents the database structure for customer profiles.
// UserID is nullable: a profile may exist before an account is linked.
type CustomerDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CompanyName    string     `gorm:"not null"`
	BusinessNumber string
	Address        string
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}

// TableName specifies the database table name for customer profiles.
func (CustomerDTO) TableName() string {
	return "customers"
}

// SupplierDTO represents the database structure for supplier profiles.
type SupplierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyName    string    `gorm:"not null"`
	BusinessNumber string
	Address        string
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CreatedAt      time.Time
}

// TableName specifies the database table name for supplier profiles.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Bytes(),
		Username:     user.Username(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role().String(),
		CompanyName:  user.CompanyName(),
		ContactPhone: user.ContactPhone(),
		IsActive:     user.IsActive(),
		CreatedAt:    user.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(
		id,
		dto.Username, dto.Email, dto.PasswordHash,
		role,
		dto.CompanyName, dto.ContactPhone,
		dto.IsActive,
		dto.CreatedAt,
	)
}

func customerFromDomain(customer *account.Customer) CustomerDTO {
	var userID *uuid.UUID
	if id := customer.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return CustomerDTO{
		ID:             customer.ID().Bytes(),
		UserID:         userID,
		CompanyName:    customer.CompanyName(),
		BusinessNumber: customer.BusinessNumber(),
		Address:        customer.Address(),
		ContactPerson:  customer.ContactPerson(),
		ContactPhone:   customer.ContactPhone(),
		ContactEmail:   customer.ContactEmail(),
		CreatedAt:      customer.CreatedAt(),
	}
}

func customerToDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	return account.RestoreCustomer(
		id, userID,
		dto.CompanyName, dto.BusinessNumber, dto.Address,
		dto.ContactPerson, dto.ContactPhone, dto.ContactEmail,
		dto.CreatedAt,
	)
}

func supplierFromDomain(supplier *account.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:             supplier.ID().Bytes(),
		UserID:         supplier.UserID().Bytes(),
		CompanyName:    supplier.CompanyName(),
		BusinessNumber: supplier.BusinessNumber(),
		Address:        supplier.Address(),
		ContactPerson:  supplier.ContactPerson(),
		ContactPhone:   supplier.ContactPhone(),
		ContactEmail:   supplier.ContactEmail(),
		CreatedAt:      supplier.CreatedAt(),
	}
}

func supplierToDomain(dto SupplierDTO) (*account.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreSupplier(
		id, userID,
		dto.CompanyName, dto.BusinessNumber, dto.Address,
		dto.ContactPerson, dto.ContactPhone, dto.ContactEmail,
		dto.CreatedAt,
	)
}
