package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// ExpirePendingOrdersCommandHandler cancels stale Pending orders in one transaction.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many orders were cancelled. Each candidate is re-read under a
// row lock; one that was confirmed or cancelled in the meantime is skipped.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	candidates, err := orderRepo.GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	lifecycle := services.NewOrderLifecycle()
	cancelled := 0
	for _, candidate := range candidates {
		o, getErr := orderRepo.GetForUpdate(ctx, candidate.ID())
		if getErr != nil {
			return 0, getErr
		}

		if o.Stage() != order.Pending {
			continue
		}

		if _, err = lifecycle.Cancel(o); err != nil {
			if errors.Is(err, order.ErrInvalidTransition) {
				continue
			}
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
