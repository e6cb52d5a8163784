package commands

import (
	"context"
	"time"

	"fluxi/internal/pkg/errs"
)

// ReassignOrderCommandHandler moves an order from its current courier to a
// new one. The old courier's commitment is released and the new courier is
// claimed inside one transaction, so no observer ever sees the order with
// two committed couriers or with none while it stays assigned.
type ReassignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewReassignOrderCommandHandler creates a handler for reassignment
// operations.
func NewReassignOrderCommandHandler(uowFactory UoWFactory) ReassignOrderCommandHandler {
	return ReassignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reassignment command. Works from pending as well, in
// which case there is no previous courier to release and the operation
// behaves like a manual assignment.
func (h ReassignOrderCommandHandler) Handle(ctx context.Context, cmd ReassignOrderCommand) error {
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

	if current := ord.Courier(); current != nil && current.IsEqual(cmd.NewCourierID()) {
		return errs.NewValueIsInvalidError("newCourierID")
	}

	next, err := uow.CourierRepository().Get(ctx, cmd.NewCourierID())
	if err != nil {
		return err
	}

	if !next.CanBeOffered() {
		return errs.NewValueIsInvalidError("newCourierID")
	}

	now := time.Now()

	previous, err := ord.Reassign(next.ID(), now)
	if err != nil {
		return err
	}

	if err = releaseCourier(ctx, uow, previous, now); err != nil {
		return err
	}

	if err = uow.CourierRepository().Claim(ctx, next.ID()); err != nil {
		return err
	}
	if err = next.Commit(now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, next); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
