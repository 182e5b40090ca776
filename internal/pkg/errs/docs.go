// Package errs provides standardized error types for the IHM workflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the application's whole error taxonomy:
//   - ValueIsRequiredError: a required value is missing (validation)
//   - ValueIsInvalidError: a value is malformed (validation)
//   - ValueIsOutOfRangeError: a value is outside its bounds (validation)
//   - ObjectNotFoundError: an object does not exist or is outside the
//     caller's visibility scope
//   - ConflictError: an action violates a uniqueness, one-to-one, or
//     status-transition invariant
//   - AuthorizationError: the caller's role does not permit the action
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter maps the sentinels onto response status codes, so every
// layer below it reports failures with these types rather than raw strings.
package errs
