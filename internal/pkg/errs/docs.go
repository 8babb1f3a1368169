// Package errs provides the standardized error types used across the
// freight-dispatch application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for a single-line human-readable message
//   - Unwrap() returning the sentinel
//
// Business-rule errors that belong to a single domain concept (for example
// a shipment that is already assigned to a driver) live next to that concept
// and follow the same sentinel/struct/Unwrap shape.
package errs
