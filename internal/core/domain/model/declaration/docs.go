// Package declaration provides the heart of the workflow: the
// DeclarationRequest and Declaration aggregates with their status state
// machines, and the HazardousMaterial line items owned by a declaration.
//
// The two state machines:
//
//	Request:     pending -> submitted -> {approved | rejected}
//	Declaration: draft   -> submitted -> {approved | rejected}
//
// Every transition goes through an explicit table on the status types;
// anything outside the table is a conflict error, including re-applying
// approve or reject to a record already in a terminal status. Rejection is
// terminal but not destructive: the record and its reason remain, and a
// resubmission moves both machines back to submitted.
//
// Cross-aggregate cascades (declaration approval completing the purchase
// order, rejection propagating to the request) are coordinated by the
// command handlers in internal/core/application/usecases/commands inside a
// single unit of work.
package declaration
