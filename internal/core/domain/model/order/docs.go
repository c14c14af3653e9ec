// Package order provides the Order aggregate and the lifecycle state machine it
// moves through.
//
// The package includes:
//   - Order: The aggregate root owning one order's identity and current stage
//   - Stage: A closed enumeration with an exhaustive transition table
//   - InvalidTransitionError: The recoverable error for an operation with no legal target
//
// Key business rules:
//   - Every order starts Pending
//   - advance: Pending -> Confirmed -> Delivered
//   - cancel: Pending or Confirmed -> Cancelled
//   - Delivered and Cancelled are terminal; any operation on them fails and changes nothing
//
// Illegal transitions are ordinary results: callers match them with
// errors.Is(err, order.ErrInvalidTransition) or errors.As into *InvalidTransitionError.
package order
