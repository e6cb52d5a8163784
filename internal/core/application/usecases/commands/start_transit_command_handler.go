package commands

import (
	"context"
	"time"
)

// StartTransitCommandHandler moves an assigned order into transit, stamping
// the moment the courier left. Only touches the order aggregate; the courier
// stays committed throughout.
type StartTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartTransitCommandHandler creates a handler for transit start
// operations.
func NewStartTransitCommandHandler(uowFactory OrderUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit start command. Fails with an invalid
// transition error unless the order is currently assigned.
func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = ord.StartTransit(time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
