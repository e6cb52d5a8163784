package commands

import (
	"errors"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier with
// a contact phone and the cash float they start the day with.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID     kernel.UUID
	name          string
	phone         kernel.Phone
	startingFloat kernel.Money
	activeToday   bool

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name string,
	phone kernel.Phone,
	startingFloat kernel.Money,
	activeToday bool,
) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		activeToday: activeToday,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setStartingFloat(startingFloat),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c CreateCourierCommand) Phone() kernel.Phone {
	return c.phone
}

// StartingFloat returns the courier's starting cash float.
func (c CreateCourierCommand) StartingFloat() kernel.Money {
	return c.startingFloat
}

// ActiveToday reports whether the courier starts on shift.
func (c CreateCourierCommand) ActiveToday() bool {
	return c.activeToday
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("phone", err)
	}
	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setStartingFloat(startingFloat kernel.Money) error {
	if err := startingFloat.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("startingFloat", err)
	}
	c.startingFloat = startingFloat
	return nil
}
