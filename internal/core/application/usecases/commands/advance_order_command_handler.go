package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler applies the advance operation to a stored order.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order's state after the transition.
// Delivered and Cancelled orders fail with *order.InvalidTransitionError.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return transition(ctx, h.uowFactory, cmd.OrderID(), order.OperationAdvance)
}
