package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the current
// transaction. Client code must explicitly manage the transaction
// lifecycle; the compound declaration submission relies on this boundary
// to guarantee that a declaration and its material rows commit together
// or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// SupplierRepository returns a SupplierRepository bound to the current transaction.
	SupplierRepository() SupplierRepository

	// ShipRepository returns a ShipRepository bound to the current transaction.
	ShipRepository() ShipRepository

	// PurchaseOrderRepository returns a PurchaseOrderRepository bound to the current transaction.
	PurchaseOrderRepository() PurchaseOrderRepository

	// DeclarationRequestRepository returns a DeclarationRequestRepository bound to the current transaction.
	DeclarationRequestRepository() DeclarationRequestRepository

	// DeclarationRepository returns a DeclarationRepository bound to the current transaction.
	DeclarationRepository() DeclarationRepository
}
