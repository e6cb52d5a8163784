package commands

import (
	"context"
	"time"

	"fluxi/internal/pkg/errs"
)

// AssignOrderCommandHandler handles manual assignment of an order to a
// chosen courier. The courier still has to be offerable and is still claimed
// with the conditional update, so a concurrent automatic assignment cannot
// double-book it; a lost claim surfaces as a conflict without retry, since
// the caller picked this exact courier.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for manual assignment
// operations.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	selected, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if !selected.CanBeOffered() {
		return errs.NewValueIsInvalidError("courierID")
	}

	if err = uow.CourierRepository().Claim(ctx, selected.ID()); err != nil {
		return err
	}

	now := time.Now()
	if err = selected.Commit(now); err != nil {
		return err
	}
	if err = ord.Assign(selected.ID(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, selected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
