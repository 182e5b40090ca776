// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the compliance system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: a domain service deciding which workflow actions a role
//     may perform and how query results are scoped per actor
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
