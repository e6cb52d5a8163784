package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrAutoAssignOrderCommandIsNotConstructed = errors.New(
	"AutoAssignOrderCommand must be created via NewAutoAssignOrderCommand constructor",
)

// AutoAssignOrderCommand represents a request to assign a pending order to
// whichever courier is available. Without a target order it picks the oldest
// pending one, which is how the background assignment job drives it.
type AutoAssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignOrderCommand creates a command that assigns the oldest
// pending order.
func NewAutoAssignOrderCommand() AutoAssignOrderCommand {
	return AutoAssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// NewAutoAssignOrderCommandForOrder creates a command that assigns one
// specific order.
func NewAutoAssignOrderCommandForOrder(orderID kernel.UUID) (AutoAssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AutoAssignOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return AutoAssignOrderCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c AutoAssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignOrderCommandIsNotConstructed)
}

// OrderID returns the targeted order, or nil when the oldest pending order
// should be picked.
func (c AutoAssignOrderCommand) OrderID() *kernel.UUID {
	return c.orderID
}
