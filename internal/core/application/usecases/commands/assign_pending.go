package commands

import (
	"context"
	"errors"
	"time"

	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/core/domain/services"
	"fluxi/internal/pkg/errs"
)

var (
	// ErrNoOrderFound is returned when no pending order exists to assign.
	ErrNoOrderFound = errors.New("no order found")

	// ErrNoCourierAvailable is returned when no courier can be offered the
	// order. Aliased from the domain service so callers only import the
	// commands package.
	ErrNoCourierAvailable = services.ErrNoCourierAvailable
)

// claimAndAssign selects an offerable courier, claims it in storage, and
// assigns the order, persisting both aggregates through the unit of work.
//
// The claim is a conditional update: when a concurrent transaction took the
// courier first, the claim reports a conflict and the whole selection is
// retried exactly once against a fresh candidate list. A second lost claim
// surfaces the conflict to the caller. The order aggregate is only mutated
// after the claim landed, so a lost race never leaves a half-assigned order.
func claimAndAssign(ctx context.Context, uow UoW, ord *order.Order, now time.Time) (*courier.Courier, error) {
	dispatcher := services.NewOrderDispatcher()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		couriers, err := uow.CourierRepository().GetAllOfferable(ctx)
		if err != nil {
			return nil, err
		}

		selected, err := dispatcher.SelectCourier(couriers)
		if err != nil {
			return nil, err
		}

		if err = uow.CourierRepository().Claim(ctx, selected.ID()); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}

		if err = selected.Commit(now); err != nil {
			return nil, err
		}
		if err = ord.Assign(selected.ID(), now); err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return nil, err
		}
		if err = uow.CourierRepository().Update(ctx, selected); err != nil {
			return nil, err
		}

		return selected, nil
	}

	return nil, lastErr
}

// releaseCourier lowers the courier's commitment in storage and on the
// aggregate. A courier that is gone from storage is treated as already
// released.
func releaseCourier(ctx context.Context, uow UoW, courierID *kernel.UUID, now time.Time) error {
	if courierID == nil {
		return nil
	}

	c, err := uow.CourierRepository().Get(ctx, *courierID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !c.IsCommitted() {
		return nil
	}

	if err = c.Release(now); err != nil {
		return err
	}
	if err = uow.CourierRepository().Release(ctx, c.ID()); err != nil {
		return err
	}

	return uow.CourierRepository().Update(ctx, c)
}
