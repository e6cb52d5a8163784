package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start pending; right after persisting, the handler attempts an
// automatic assignment in the same transaction. Not finding a courier is a
// normal outcome: the order simply stays pending and the background
// assignment job picks it up later.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires a UoWFactory because a successful auto-assignment
// touches both aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command.
//
// Orders carrying an external reference already present in storage are
// rejected with a conflict error instead of being created twice. After the
// order is persisted the handler tries to assign a courier; no courier
// available and a twice-lost claim race are both swallowed, leaving the
// order pending for the assignment job.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	params := cmd.Params()
	if params.ExternalRef != nil {
		existing, err := orderRepo.GetByExternalRef(ctx, *params.ExternalRef)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if existing != nil {
			return errs.NewConflictError("order", existing.ID().String())
		}
	}

	now := time.Now()
	ord, err := order.NewOrder(cmd.OrderID(), params, now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, ord); err != nil {
		return err
	}

	if _, err = claimAndAssign(ctx, uow, ord, now); err != nil {
		switch {
		case errors.Is(err, ErrNoCourierAvailable):
			h.logger.InfoContext(ctx, "no courier available, order stays pending",
				"order_id", ord.ID().String())
		case errors.Is(err, errs.ErrConflict):
			h.logger.WarnContext(ctx, "assignment race lost twice, order stays pending",
				"order_id", ord.ID().String())
		default:
			return err
		}
	}

	return uow.Commit(ctx)
}
