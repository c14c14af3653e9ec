package memory

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory whose units of work share store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork with no transaction open yet.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Without Begin, writes go
// straight to the store. A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store *Store

	active  bool
	added   map[uuid.UUID]order.Snapshot
	updated map[uuid.UUID]order.Snapshot
	held    map[uuid.UUID]chan struct{}
}

// Begin opens the transaction. Calling it again while one is open does nothing.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.active = true
	uow.added = make(map[uuid.UUID]order.Snapshot)
	uow.updated = make(map[uuid.UUID]order.Snapshot)
	uow.held = make(map[uuid.UUID]chan struct{})
	return nil
}

// Commit applies staged writes atomically and releases row locks.
// An order added concurrently by another unit of work fails the whole commit
// with *errs.ObjectAlreadyExistsError and nothing is applied.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionNotActive
	}
	defer uow.finish()

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	for id := range uow.added {
		if _, exists := uow.store.orders[id]; exists {
			return errs.NewObjectAlreadyExistsError("order", id.String())
		}
	}

	for id, snapshot := range uow.added {
		uow.store.orders[id] = snapshot
	}
	for id, snapshot := range uow.updated {
		uow.store.orders[id] = snapshot
	}

	return nil
}

// Rollback discards staged writes and releases row locks.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrTransactionNotActive
	}

	uow.finish()
	return nil
}

// OrderRepository returns a repository reading through this unit of work's staged writes.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	for _, l := range uow.held {
		unlock(l)
	}

	uow.active = false
	uow.added = nil
	uow.updated = nil
	uow.held = nil
}

// lookup sees this unit of work's staged writes first, then committed state.
func (uow *UnitOfWork) lookup(id uuid.UUID) (order.Snapshot, bool) {
	if uow.active {
		if snapshot, ok := uow.updated[id]; ok {
			return snapshot, true
		}
		if snapshot, ok := uow.added[id]; ok {
			return snapshot, true
		}
	}

	return uow.store.get(id)
}

// view returns committed state overlaid with this unit of work's staged writes.
func (uow *UnitOfWork) view() []order.Snapshot {
	orders := uow.store.all()
	if uow.active {
		for id, snapshot := range uow.added {
			orders[id] = snapshot
		}
		for id, snapshot := range uow.updated {
			orders[id] = snapshot
		}
	}

	snapshots := make([]order.Snapshot, 0, len(orders))
	for _, snapshot := range orders {
		snapshots = append(snapshots, snapshot)
	}
	sortOldestFirst(snapshots)
	return snapshots
}
