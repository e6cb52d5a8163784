package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents a courier picking up an assigned order and
// heading out.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to move an order into transit.
func NewStartTransitCommand(orderID kernel.UUID) (StartTransitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartTransitCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return StartTransitCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the order heading into transit.
func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}
