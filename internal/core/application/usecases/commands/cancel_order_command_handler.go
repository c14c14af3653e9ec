package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// CancelOrderCommandHandler applies the cancel operation to a stored order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order's state after the transition.
// Delivered and Cancelled orders fail with *order.InvalidTransitionError.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return transition(ctx, h.uowFactory, cmd.OrderID(), order.OperationCancel)
}
