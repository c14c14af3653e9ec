package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per use case invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repository calls to one transaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//	// ... uow.OrderRepository() ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	// Rollback is a no-op error after Commit; callers defer it unconditionally.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
