// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation failures and for the
// order workflow taxonomy:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced order, request or product is absent
//   - NotAuthorizedError: the actor lacks the role or ownership relation
//   - ConflictError: a state-based race or duplicate
//   - InvalidTransitionError: the requested status is not the legal next state
//   - NotEligibleError: the object is not in a state that accepts the action
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// KindOf classifies any error (including joined and wrapped ones) into a Kind,
// which adapters use to pick a response without inspecting messages.
package errs
