// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases, scoped to the
// acting user's visibility: customers see their own fleet's records,
// suppliers the records naming them, operators everything.
package queries

import (
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/services"
)

// Visibility predicates as SQL fragments. Profile ids are resolved inside
// the query through a subselect on the acting user, so an actor without a
// profile simply sees nothing.
const (
	shipCustomerScopeSQL = `ships.customer_id = (SELECT id FROM customers WHERE user_id = ?)`

	orderSupplierScopeSQL = `purchase_orders.id IN (
		SELECT purchase_order_id FROM declaration_requests
		WHERE supplier_id = (SELECT id FROM suppliers WHERE user_id = ?))`

	requestSupplierScopeSQL = `declaration_requests.supplier_id = (
		SELECT id FROM suppliers WHERE user_id = ?)`

	declarationSupplierScopeSQL = `declarations.supplier_id = (
		SELECT id FROM suppliers WHERE user_id = ?)`

	// noVisibilitySQL matches no rows; used when a role has no view of a
	// table at all.
	noVisibilitySQL = `1 = 0`
)

// scopePredicate returns the row-visibility WHERE fragment for the actor,
// or an empty string for unrestricted access. customerSQL and supplierSQL
// are the role-specific fragments; each takes the actor's user id as its
// single bind parameter.
func scopePredicate(actor services.Actor, customerSQL, supplierSQL string) (string, []any) {
	switch actor.Role {
	case account.RoleCustomer:
		if customerSQL == noVisibilitySQL {
			return customerSQL, nil
		}
		return customerSQL, []any{actor.UserID.String()}
	case account.RoleSupplier:
		if supplierSQL == noVisibilitySQL {
			return supplierSQL, nil
		}
		return supplierSQL, []any{actor.UserID.String()}
	default:
		return "", nil
	}
}
