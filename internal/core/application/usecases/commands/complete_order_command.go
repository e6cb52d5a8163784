package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a courier handing the package over.
// Optionally records the voucher outcome for card payments.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	voucher *order.VoucherStatus

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order delivered.
// The voucher status is optional; pass nil to leave it untouched.
func NewCompleteOrderCommand(orderID kernel.UUID, voucher *order.VoucherStatus) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if voucher != nil {
		if err := voucher.Validate(); err != nil {
			return CompleteOrderCommand{}, err
		}
	}

	return CompleteOrderCommand{
		orderID: orderID,
		voucher: voucher,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Voucher returns the recorded voucher outcome, or nil when untouched.
func (c CompleteOrderCommand) Voucher() *order.VoucherStatus {
	return c.voucher
}
