// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the dispatch domain:
//   - ValueIsRequiredError / ValueIsInvalidError: constructor validation failures
//   - ObjectNotFoundError: an entity id unknown to its owning store or registry
//   - ResourceUnavailableError: auto-assignment found no matching vehicle or driver
//   - UpstreamUnavailableError: a registry call failed at the transport level
//   - ConflictError: an operation rejected by the entity's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// Domain errors (not found, resource unavailable, conflict) are surfaced to the
// caller and mapped to HTTP statuses at the boundary; upstream errors during the
// release half of a transition are queued for reconciliation instead of failing
// the whole operation.
package errs
