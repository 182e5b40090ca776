package account

import (
	"fmt"

	"ihm/internal/pkg/errs"
)

// Role is the closed set of user roles in the system. Every permission
// check dispatches on this type rather than on raw strings, so the full
// authorization policy lives in one place (see domain/services).
//
// A role is assigned at registration and never changes afterwards.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOperator is the platform operator with unrestricted visibility.
	// Only operators may approve or reject requests and declarations.
	RoleOperator

	// RoleSupplier is a supplier company user. Suppliers see only the
	// declaration requests and declarations addressed to them.
	RoleSupplier

	// RoleCustomer is a ship-owner company user. Customers see only their
	// own ships and the records belonging to those ships.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleOperator: "operator",
		RoleSupplier: "supplier",
		RoleCustomer: "customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOperator: "operator",
		RoleSupplier: "supplier",
		RoleCustomer: "customer",
	}
}

// ParseRole converts the wire representation ("operator", "supplier",
// "customer") into a Role. Any other input is a validation error.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: RoleOperator, RoleSupplier, RoleCustomer.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase wire name of the role, or "unknown" for
// invalid values. This is the representation persisted and exposed over
// the API.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
