package kernel

import (
	"fmt"

	"fluxi/internal/pkg/errs"
	"fluxi/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney constructor")

// Money is a non-negative amount of Colombian pesos.
// Amounts are whole pesos; COP has no commonly used fractional unit.
// Money is an immutable value object and its zero value is invalid.
//
// Example:
//
//	value, err := kernel.NewMoney(25000)
//	if err != nil {
//	    // handle negative amount
//	}
type Money struct {
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money amount. Negative amounts are rejected with a
// validation error naming the parameter.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in whole pesos.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount + other.amount)
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with the COP currency tag.
func (m Money) String() string {
	return fmt.Sprintf("%d COP", m.amount)
}

// Validate checks if the Money was constructed via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
