package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order.
// Carries the client contact data, the destination, the amounts, and the
// payment details. The optional external reference deduplicates orders
// imported from outside systems.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	params  order.NewOrderParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the identifier and the fields the aggregate constructor will
// enforce again at handle time, so a malformed request fails before a
// transaction is opened.
func NewCreateOrderCommand(orderID kernel.UUID, params order.NewOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParams(params),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Params returns the order fields the aggregate will be built from.
func (c CreateOrderCommand) Params() order.NewOrderParams {
	return c.params
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParams(params order.NewOrderParams) error {
	if err := errors.Join(
		requireText("clientName", params.ClientName),
		requireText("address", params.Address),
		params.ClientPhone.Validate(),
		params.Value.Validate(),
		params.DeliveryFee.Validate(),
	); err != nil {
		return err
	}

	c.params = params
	return nil
}

func requireText(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
