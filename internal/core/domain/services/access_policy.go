package services

import (
	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/pkg/errs"
)

// Action enumerates every role-gated operation in the workflow. Permission
// checks dispatch through the capability table below instead of comparing
// role strings inline at each call site.
type Action int

const (
	// ActionCreateShip registers a vessel in the fleet.
	ActionCreateShip Action = iota

	// ActionUpdateShip changes vessel particulars or the active flag.
	ActionUpdateShip

	// ActionListMyShips is the customer self-scoped fleet listing.
	ActionListMyShips

	// ActionCreatePurchaseOrder issues an order against a ship.
	ActionCreatePurchaseOrder

	// ActionRequestDeclaration attaches a declaration request to an order.
	ActionRequestDeclaration

	// ActionListPendingRequests is the supplier self-scoped pending queue.
	ActionListPendingRequests

	// ActionApproveRequest resolves a declaration request as accepted.
	ActionApproveRequest

	// ActionRejectRequest resolves a declaration request as rejected.
	ActionRejectRequest

	// ActionSubmitDeclaration submits a declaration with its materials.
	ActionSubmitDeclaration

	// ActionApproveDeclaration approves a submitted declaration.
	ActionApproveDeclaration

	// ActionRejectDeclaration rejects a submitted declaration.
	ActionRejectDeclaration

	// ActionListMyShipDeclarations is the customer self-scoped approved
	// declaration listing.
	ActionListMyShipDeclarations
)

func getActionNames() map[Action]string {
	return map[Action]string{
		ActionCreateShip:             "create ship",
		ActionUpdateShip:             "update ship",
		ActionListMyShips:            "list my ships",
		ActionCreatePurchaseOrder:    "create purchase order",
		ActionRequestDeclaration:     "request declaration",
		ActionListPendingRequests:    "list pending declaration requests",
		ActionApproveRequest:         "approve declaration request",
		ActionRejectRequest:          "reject declaration request",
		ActionSubmitDeclaration:      "submit declaration",
		ActionApproveDeclaration:     "approve declaration",
		ActionRejectDeclaration:      "reject declaration",
		ActionListMyShipDeclarations: "list my ship declarations",
	}
}

// String returns the human-readable action name used in error messages.
func (a Action) String() string {
	if name, ok := getActionNames()[a]; ok {
		return name
	}
	return "unknown action"
}

// capabilities is the single role-permission table of the system.
// Operators additionally hold every capability; see AccessPolicy.Authorize.
func capabilities() map[Action][]account.Role {
	return map[Action][]account.Role{
		ActionCreateShip:             {account.RoleCustomer},
		ActionUpdateShip:             {account.RoleCustomer},
		ActionListMyShips:            {account.RoleCustomer},
		ActionCreatePurchaseOrder:    {account.RoleCustomer},
		ActionRequestDeclaration:     {account.RoleCustomer},
		ActionListPendingRequests:    {account.RoleSupplier},
		ActionApproveRequest:         {},
		ActionRejectRequest:          {},
		ActionSubmitDeclaration:      {account.RoleSupplier},
		ActionApproveDeclaration:     {},
		ActionRejectDeclaration:      {},
		ActionListMyShipDeclarations: {account.RoleCustomer},
	}
}

// operatorExempt lists the self-scoped listings an operator has no profile
// for: they are denied rather than silently unscoped.
func operatorExempt() map[Action]bool {
	return map[Action]bool{
		ActionListMyShips:            true,
		ActionListPendingRequests:    true,
		ActionListMyShipDeclarations: true,
		ActionSubmitDeclaration:      true,
	}
}

// AccessPolicy is the domain service answering "may this role perform this
// action". It produces authorization errors, which the HTTP adapter keeps
// distinct from not-found: the caller learns they lack permission, never
// whether the resource exists.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize checks the capability table for the given role and action.
//
// Rules:
//   - Operators may perform every action except the self-scoped listings
//     and submissions that require a supplier or customer profile.
//   - Other roles must appear in the action's capability list.
//
// Returns nil when permitted, or an *errs.AuthorizationError.
func (p AccessPolicy) Authorize(role account.Role, action Action) error {
	if err := role.Validate(); err != nil {
		return errs.NewAuthorizationError(action.String(), role.String())
	}

	if role == account.RoleOperator {
		if operatorExempt()[action] {
			return errs.NewAuthorizationError(action.String(), role.String())
		}
		return nil
	}

	for _, allowed := range capabilities()[action] {
		if role == allowed {
			return nil
		}
	}
	return errs.NewAuthorizationError(action.String(), role.String())
}

// Actor identifies the authenticated caller for visibility scoping. The
// profile ids are resolved lazily by the use cases that need them.
type Actor struct {
	UserID kernel.UUID
	Role   account.Role
}

// Scope is the record-visibility filter derived from an actor. A zero
// Scope (both ids nil) means unrestricted visibility and is only ever
// produced for operators.
//
// Repositories and read models apply the scope to every fetch, folding
// "exists but not mine" into not-found.
type Scope struct {
	// CustomerID limits visibility to records of this customer's ships.
	CustomerID *kernel.UUID

	// SupplierID limits visibility to records naming this supplier.
	SupplierID *kernel.UUID
}

// Unrestricted reports whether the scope imposes no filter.
func (s Scope) Unrestricted() bool {
	return s.CustomerID == nil && s.SupplierID == nil
}
