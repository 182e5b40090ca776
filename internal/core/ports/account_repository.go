package ports

import (
	"context"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user identities.
type UserRepository interface {
	// Add persists a new user. A duplicate username surfaces as a conflict.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByUsername retrieves a user by its login name.
	GetByUsername(ctx context.Context, username string) (*account.User, error)
}

// CustomerRepository defines the persistence contract for customer profiles.
type CustomerRepository interface {
	// Add persists a new customer profile. A duplicate business number
	// surfaces as a conflict.
	Add(ctx context.Context, aggregate *account.Customer) error

	// Get retrieves a customer profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Customer, error)

	// GetByUserID retrieves the profile linked to the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Customer, error)
}

// SupplierRepository defines the persistence contract for supplier profiles.
type SupplierRepository interface {
	// Add persists a new supplier profile. A duplicate business number
	// surfaces as a conflict.
	Add(ctx context.Context, aggregate *account.Supplier) error

	// Get retrieves a supplier profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Supplier, error)

	// GetByUserID retrieves the profile linked to the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Supplier, error)
}
