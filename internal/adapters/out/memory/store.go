// Package memory provides an in-process implementation of the persistence ports.
//
// It backs STORAGE=memory runs and HTTP tests. Semantics follow the Postgres
// adapter closely:
//   - Committed state lives in a Store shared by every unit of work
//   - A unit of work stages Add and Update calls and applies them on Commit
//   - GetForUpdate holds a per-order lock until Commit or Rollback
//   - Every read returns a fresh aggregate, so callers never share one by accident
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ErrTransactionNotActive is returned by Commit and Rollback without a preceding Begin.
var ErrTransactionNotActive = errors.New("memory: transaction is not active")

// Store holds committed orders.
type Store struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Snapshot

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[uuid.UUID]order.Snapshot),
		locks:  make(map[uuid.UUID]chan struct{}),
	}
}

// lock blocks until the row lock for id is free or ctx is done.
func (s *Store) lock(ctx context.Context, id uuid.UUID) (chan struct{}, error) {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[id] = l
	}
	s.locksMu.Unlock()

	select {
	case l <- struct{}{}:
		return l, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func unlock(l chan struct{}) {
	<-l
}

func (s *Store) get(id uuid.UUID) (order.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.orders[id]
	return snapshot, ok
}

// all returns a copy of the committed orders.
func (s *Store) all() map[uuid.UUID]order.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make(map[uuid.UUID]order.Snapshot, len(s.orders))
	for id, snapshot := range s.orders {
		orders[id] = snapshot
	}
	return orders
}

// sortOldestFirst orders snapshots by creation time, then by ID for a stable result.
func sortOldestFirst(snapshots []order.Snapshot) {
	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].CreatedAt.Equal(snapshots[j].CreatedAt) {
			return snapshots[i].CreatedAt.Before(snapshots[j].CreatedAt)
		}
		return snapshots[i].ID.String() < snapshots[j].ID.String()
	})
}
