// Package queries contains read-only use cases over stored orders.
package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderReader is the read subset of ports.OrderRepository used by query handlers.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
