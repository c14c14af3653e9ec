package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpirePendingOrdersCommand(t *testing.T) {
	cutoff := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	cmd, err := commands.NewExpirePendingOrdersCommand(cutoff)

	require.NoError(t, err)
	assert.True(t, cmd.Cutoff().Equal(cutoff))
	assert.Equal(t, time.UTC, cmd.Cutoff().Location())

	_, err = commands.NewExpirePendingOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestExpirePendingOrdersCommandHandler_Handle(t *testing.T) {
	cutoff := time.Now().UTC()

	t.Run("should cancel stale pending orders and skip ones that moved on", func(t *testing.T) {
		stale := restoredOrder(t, order.Pending)
		confirmedMeanwhile := restoredOrder(t, order.Pending)
		reloaded := restoredOrder(t, order.Confirmed)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).
			Return([]*order.Order{stale, confirmedMeanwhile}, nil).Once()
		repo.On("GetForUpdate", mock.Anything, stale.ID()).Return(stale, nil).Once()
		repo.On("GetForUpdate", mock.Anything, confirmedMeanwhile.ID()).Return(reloaded, nil).Once()
		repo.On("Update", mock.Anything, stale).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()

		cmd, _ := commands.NewExpirePendingOrdersCommand(cutoff)
		cancelled, err := commands.NewExpirePendingOrdersCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, cancelled)
		assert.Equal(t, order.Cancelled, stale.Stage())
		assert.Equal(t, order.Confirmed, reloaded.Stage())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should commit nothing when there are no candidates", func(t *testing.T) {
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).Return([]*order.Order{}, nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()

		cmd, _ := commands.NewExpirePendingOrdersCommand(cutoff)
		cancelled, err := commands.NewExpirePendingOrdersCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, cancelled)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should abort on update failure", func(t *testing.T) {
		stale := restoredOrder(t, order.Pending)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).Return([]*order.Order{stale}, nil).Once()
		repo.On("GetForUpdate", mock.Anything, stale.ID()).Return(stale, nil).Once()
		repo.On("Update", mock.Anything, stale).Return(errors.New("connection reset")).Once()
		uow.On("Rollback", mock.Anything).Return(nil).Once()

		cmd, _ := commands.NewExpirePendingOrdersCommand(cutoff)
		cancelled, err := commands.NewExpirePendingOrdersCommandHandler(factory).Handle(t.Context(), cmd)

		require.EqualError(t, err, "connection reset")
		assert.Zero(t, cancelled)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
