// Package services provides domain services of the order lifecycle.
//
// The package includes:
//   - OrderLifecycle: advance, cancel and status on an order handle
package services
