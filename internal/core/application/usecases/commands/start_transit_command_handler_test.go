package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fluxi/internal/core/application/usecases/commands"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
)

func TestStartTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	c := testOfferableCourier(t)
	ord := testPendingOrder(t)
	require.NoError(t, c.Commit(now))
	require.NoError(t, ord.Assign(c.ID(), now))

	cmd, err := commands.NewStartTransitCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	mock.InOrder(
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTransitCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, ord.Status())
	assert.NotNil(t, ord.StartedAt())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartTransitCommandHandler_Handle_FromPendingFails(t *testing.T) {
	ctx := context.Background()
	ord := testPendingOrder(t)

	cmd, err := commands.NewStartTransitCommand(ord.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTransitCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, ord.Status())
	assert.Nil(t, ord.StartedAt())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartTransitCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewStartTransitCommand(testPendingOrder(t).ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, mock.Anything).Return(nil, errs.ErrObjectNotFound).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartTransitCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
