package commands

import (
	"context"
	"time"

	"fluxi/internal/pkg/errs"
)

// RemoveCourierCommandHandler takes a courier out of the operation. Removal
// is blocked while the courier holds any active order; those have to be
// delivered, cancelled, or reassigned first.
//
// A courier with delivered or cancelled orders on record is retired rather
// than deleted, so historical orders keep a valid courier reference. Only a
// courier with no orders at all is actually removed from storage.
type RemoveCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveCourierCommandHandler creates a handler for courier removal
// operations.
func NewRemoveCourierCommandHandler(uowFactory UoWFactory) RemoveCourierCommandHandler {
	return RemoveCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier removal command.
func (h RemoveCourierCommandHandler) Handle(ctx context.Context, cmd RemoveCourierCommand) error {
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

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	active, err := uow.OrderRepository().GetActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewConflictError("courier", cmd.CourierID().String())
	}

	history, err := uow.OrderRepository().GetByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if len(history) == 0 {
		if err = uow.CourierRepository().Remove(ctx, cmd.CourierID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	c.Retire(time.Now())
	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
