package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// transition loads the order under a row lock, applies op and persists the result.
// When the domain rejects op nothing is written and the domain error is returned as is.
func transition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	op order.Operation,
) (order.Snapshot, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return order.Snapshot{}, err
	}

	if _, err = services.NewOrderLifecycle().Apply(o, op); err != nil {
		return order.Snapshot{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
