// Package account provides the identity and organization directory: users
// with a closed role tag (operator, supplier, customer) and the company
// profiles linked to them.
//
// The Role type is the single source of truth for role identity. Permission
// decisions are not made here; the capability table lives in
// internal/core/domain/services, which dispatches on Role.
package account
