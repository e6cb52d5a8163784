package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrSetCourierShiftCommandIsNotConstructed = errors.New(
	"SetCourierShiftCommand must be created via NewSetCourierShiftCommand constructor",
)

// SetCourierShiftCommand represents a courier going on or off shift.
type SetCourierShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

// NewSetCourierShiftCommand creates a command to change a courier's shift
// state.
func NewSetCourierShiftCommand(courierID kernel.UUID, active bool) (SetCourierShiftCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierShiftCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return SetCourierShiftCommand{
		courierID: courierID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierShiftCommandIsNotConstructed)
}

// CourierID returns the courier whose shift changes.
func (c SetCourierShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Active reports whether the courier is going on shift.
func (c SetCourierShiftCommand) Active() bool {
	return c.active
}
