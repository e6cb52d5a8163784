package commands

import (
	"context"
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
)

// SetCourierShiftCommandHandler puts a courier on or off shift. Ending a
// shift is blocked while the courier has an order in transit; the package
// has to arrive or the order be cancelled first.
type SetCourierShiftCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetCourierShiftCommandHandler creates a handler for shift change
// operations.
func NewSetCourierShiftCommandHandler(uowFactory UoWFactory) SetCourierShiftCommandHandler {
	return SetCourierShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift change command.
func (h SetCourierShiftCommandHandler) Handle(ctx context.Context, cmd SetCourierShiftCommand) error {
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

	now := time.Now()
	if cmd.Active() {
		if err = c.StartShift(now); err != nil {
			return err
		}
	} else {
		inTransit, err := hasInTransitOrder(ctx, uow, cmd.CourierID())
		if err != nil {
			return err
		}
		if inTransit {
			return errs.NewInvalidTransitionError(order.InTransit.String(), "off shift")
		}
		c.EndShift(now)
	}

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func hasInTransitOrder(ctx context.Context, uow UoW, courierID kernel.UUID) (bool, error) {
	active, err := uow.OrderRepository().GetActiveByCourier(ctx, courierID)
	if err != nil {
		return false, err
	}

	for _, ord := range active {
		if ord.Status() == order.InTransit {
			return true, nil
		}
	}
	return false, nil
}
