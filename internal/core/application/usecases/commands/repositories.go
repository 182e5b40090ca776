// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"ihm/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// ShipRepoFactory provides access to the ship repository within a transaction.
	ShipRepoFactory interface {
		ShipRepository() ports.ShipRepository
	}

	// PurchaseOrderRepoFactory provides access to the purchase order repository
	// within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// RequestRepoFactory provides access to the declaration request repository
	// within a transaction.
	RequestRepoFactory interface {
		DeclarationRequestRepository() ports.DeclarationRequestRepository
	}

	// DeclarationRepoFactory provides access to the declaration repository
	// within a transaction.
	DeclarationRepoFactory interface {
		DeclarationRepository() ports.DeclarationRepository
	}

	// AccountUoW manages transactions for account registration and profile
	// changes.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		CustomerRepoFactory
		SupplierRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// FleetUoW manages transactions for ship registration and updates. The
	// customer repository participates so ownership can be resolved inside
	// the same transaction.
	FleetUoW interface {
		TxManager
		ShipRepoFactory
		CustomerRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// ProcurementUoW manages transactions for purchase order creation.
	ProcurementUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		ShipRepoFactory
		CustomerRepoFactory
	}

	// ProcurementUoWFactory creates new procurement unit of work instances.
	ProcurementUoWFactory interface {
		Create() ProcurementUoW
	}

	// DeclarationUoW manages transactions across the declaration workflow.
	// Requesting, submitting and reviewing declarations touch the purchase
	// order, the request and the declaration together, so the compound
	// operations commit as one unit or not at all.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   requestRepo := uow.DeclarationRequestRepository()
	//   declarationRepo := uow.DeclarationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeclarationUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		ShipRepoFactory
		CustomerRepoFactory
		SupplierRepoFactory
		RequestRepoFactory
		DeclarationRepoFactory
	}

	// DeclarationUoWFactory creates new declaration unit of work instances.
	DeclarationUoWFactory interface {
		Create() DeclarationUoW
	}
)
