package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrReassignOrderCommandIsNotConstructed = errors.New(
	"ReassignOrderCommand must be created via NewReassignOrderCommand constructor",
)

// ReassignOrderCommand represents a request to move an order to a different
// courier before the delivery starts.
type ReassignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newCourierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignOrderCommand creates a command to hand an order to another
// courier.
func NewReassignOrderCommand(orderID, newCourierID kernel.UUID) (ReassignOrderCommand, error) {
	cmd := ReassignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewCourierID(newCourierID),
	); err != nil {
		return ReassignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
}

// OrderID returns the order being moved.
func (c ReassignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewCourierID returns the courier the order moves to.
func (c ReassignOrderCommand) NewCourierID() kernel.UUID {
	return c.newCourierID
}

func (c *ReassignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ReassignOrderCommand) setNewCourierID(newCourierID kernel.UUID) error {
	if err := newCourierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("newCourierID", err)
	}
	c.newCourierID = newCourierID
	return nil
}
