package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrRemoveCourierCommandIsNotConstructed = errors.New(
	"RemoveCourierCommand must be created via NewRemoveCourierCommand constructor",
)

// RemoveCourierCommand represents a request to retire a courier from the
// operation.
type RemoveCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCourierCommand creates a command to retire a courier.
func NewRemoveCourierCommand(courierID kernel.UUID) (RemoveCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return RemoveCourierCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return RemoveCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCourierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCourierCommandIsNotConstructed)
}

// CourierID returns the courier being retired.
func (c RemoveCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
