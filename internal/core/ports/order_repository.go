// Package ports defines the persistence contracts of the order lifecycle.
// Adapters in internal/adapters/out implement them; the application layer only
// depends on these interfaces.
package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. An existing ID fails with *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current stage of an existing order.
	// A missing order fails with *errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID. A missing order fails with *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the surrounding unit of work
	// ends, so concurrent transitions on the same order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive returns every order in a non-terminal stage, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingCreatedBefore returns Pending orders created strictly before cutoff, oldest first.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
