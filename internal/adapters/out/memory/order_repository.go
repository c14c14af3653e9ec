package memory

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order, or stores it immediately outside a transaction.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Snapshot()
	id := snapshot.ID.Bytes()
	if _, exists := r.uow.lookup(id); exists {
		return errs.NewObjectAlreadyExistsError("order", snapshot.ID.String())
	}

	if r.uow.active {
		r.uow.added[id] = snapshot
		return nil
	}

	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, exists := store.orders[id]; exists {
		return errs.NewObjectAlreadyExistsError("order", snapshot.ID.String())
	}
	store.orders[id] = snapshot
	return nil
}

// Update stages the order's current state, or stores it immediately outside a transaction.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot := aggregate.Snapshot()
	id := snapshot.ID.Bytes()
	if _, exists := r.uow.lookup(id); !exists {
		return errs.NewObjectNotFoundError("order", snapshot.ID.String())
	}

	if r.uow.active {
		if _, staged := r.uow.added[id]; staged {
			r.uow.added[id] = snapshot
		} else {
			r.uow.updated[id] = snapshot
		}
		return nil
	}

	store := r.uow.store
	store.mu.Lock()
	defer store.mu.Unlock()
	store.orders[id] = snapshot
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snapshot, ok := r.uow.lookup(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return restore(snapshot)
}

// GetForUpdate takes the order's row lock before reading it. Inside a transaction the
// lock is held until Commit or Rollback; outside one it is released after the read.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.Bytes()
	if !r.uow.active {
		l, err := r.uow.store.lock(ctx, key)
		if err != nil {
			return nil, err
		}
		defer unlock(l)
	} else if _, held := r.uow.held[key]; !held {
		l, err := r.uow.store.lock(ctx, key)
		if err != nil {
			return nil, err
		}
		r.uow.held[key] = l
	}

	return r.Get(ctx, id)
}

// GetAllActive returns every Pending or Confirmed order, oldest first.
func (r *OrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return r.filter(func(s order.Snapshot) bool {
		return !s.Stage.IsTerminal()
	})
}

// GetAllPendingCreatedBefore returns Pending orders created strictly before cutoff, oldest first.
func (r *OrderRepository) GetAllPendingCreatedBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.filter(func(s order.Snapshot) bool {
		return s.Stage == order.Pending && s.CreatedAt.Before(cutoff)
	})
}

func (r *OrderRepository) filter(keep func(order.Snapshot) bool) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for _, snapshot := range r.uow.view() {
		if !keep(snapshot) {
			continue
		}
		o, err := restore(snapshot)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func restore(s order.Snapshot) (*order.Order, error) {
	return order.RestoreOrder(s.ID, s.Stage, s.CreatedAt, s.UpdatedAt)
}
