package commands

import (
	"context"
	"errors"
	"time"

	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
)

// AutoAssignOrderCommandHandler orchestrates automatic courier assignment.
// Finds the pending order, selects an offerable courier, claims it with a
// conditional update, and moves the order to assigned, all inside a single
// transaction.
//
// Callers distinguish outcomes with errors.Is:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):        // nothing pending
//	case errors.Is(err, ErrNoCourierAvailable):  // everyone busy or off shift
//	case errors.Is(err, errs.ErrConflict):       // claim race lost twice
//	case err != nil:                             // infrastructure failure
//	}
type AutoAssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAutoAssignOrderCommandHandler creates a handler for automatic
// assignment operations.
func NewAutoAssignOrderCommandHandler(uowFactory UoWFactory) AutoAssignOrderCommandHandler {
	return AutoAssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the automatic assignment command.
func (h AutoAssignOrderCommandHandler) Handle(ctx context.Context, cmd AutoAssignOrderCommand) error {
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

	ord, err := h.findOrder(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if _, err = claimAndAssign(ctx, uow, ord, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AutoAssignOrderCommandHandler) findOrder(ctx context.Context, uow UoW, cmd AutoAssignOrderCommand) (*order.Order, error) {
	orderRepo := uow.OrderRepository()

	if cmd.OrderID() != nil {
		ord, err := orderRepo.Get(ctx, *cmd.OrderID())
		if err != nil {
			return nil, err
		}
		return ord, nil
	}

	ord, err := orderRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}
	return ord, nil
}
