package kernel

import (
	"fmt"
	"strings"

	"fluxi/internal/pkg/errs"
)

const (
	phoneCountryPrefix    = "57"
	phoneNationalLength   = 10
	phoneMobileFirstDigit = '3'
)

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly
// initialized Phone. Phones must be created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")

// Phone is a validated Colombian mobile phone number.
// Phone is an immutable value object; its canonical form is the E.164-like
// "+57" prefixed representation, e.g. "+573001234567".
//
// Accepted raw inputs (punctuation, spaces, and a leading "+" are ignored):
//   - national mobile format: 10 digits starting with 3 ("3001234567")
//   - the same number with the 57 country prefix ("573001234567")
//
// Anything else fails validation: landlines, short numbers, and numbers
// from other country codes are rejected.
//
// Example:
//
//	phone, err := kernel.NewPhone("300 123 4567")
//	if err != nil {
//	    // handle invalid phone
//	}
//	fmt.Println(phone.String()) // "+573001234567"
type Phone struct {
	national string // 10 digit national number, canonical
}

// NewPhone parses and normalizes a Colombian mobile phone number.
// Returns a validation error naming the phone parameter when the input does
// not resolve to a valid mobile number.
func NewPhone(raw string) (Phone, error) {
	digits := digitsOf(raw)

	if len(digits) == phoneNationalLength+len(phoneCountryPrefix) && strings.HasPrefix(digits, phoneCountryPrefix) {
		digits = digits[len(phoneCountryPrefix):]
	}

	if len(digits) != phoneNationalLength {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q does not have %d national digits", raw, phoneNationalLength))
	}

	if digits[0] != phoneMobileFirstDigit {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a Colombian mobile number", raw))
	}

	return Phone{national: digits}, nil
}

// PhoneFromCanonical restores a Phone from its canonical "+57..." form as
// stored in the database. It applies the same validation as NewPhone.
func PhoneFromCanonical(s string) (Phone, error) {
	return NewPhone(s)
}

// String returns the canonical "+57" prefixed representation.
func (p Phone) String() string {
	return "+" + phoneCountryPrefix + p.national
}

// National returns the 10 digit national number without the country prefix.
func (p Phone) National() string {
	return p.national
}

// IsEqual compares two phone numbers for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.national == other.national
}

// Validate checks if the Phone was constructed via NewPhone.
func (p Phone) Validate() error {
	if p.national == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
