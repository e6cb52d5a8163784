package commands

import (
	"context"
	"time"
)

// CompleteOrderCommandHandler marks an in-transit order delivered, stamps
// the delivery time, and releases the courier for new work. The courier
// reference stays on the delivered order for the record.
//
// Completing twice fails on the status transition before the courier is
// touched, so a retry of a finished delivery never releases a courier that
// has since been committed elsewhere.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion
// operations.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = ord.Deliver(now); err != nil {
		return err
	}

	if cmd.Voucher() != nil {
		if err = ord.SetVoucher(*cmd.Voucher(), now); err != nil {
			return err
		}
	}

	if err = releaseCourier(ctx, uow, ord.Courier(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
