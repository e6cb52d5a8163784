package order

import (
	"fmt"

	"fluxi/internal/pkg/errs"
)

// PaymentMethod represents how the client pays for an order.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is payment in cash on delivery.
	PaymentCash

	// PaymentCardTerminal is payment through a portable card terminal the
	// courier carries. Orders with this method record the terminal number.
	PaymentCardTerminal

	// PaymentTransfer is a bank transfer settled before or on delivery.
	PaymentTransfer

	// PaymentThirdPartyApp is payment collected through an external app.
	PaymentThirdPartyApp

	// PaymentOther covers anything the other methods do not.
	PaymentOther
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash:          "cash",
		PaymentCardTerminal:  "card_terminal",
		PaymentTransfer:      "transfer",
		PaymentThirdPartyApp: "third_party_app",
		PaymentOther:         "other",
	}
}

// PaymentMethodFromString parses a persisted payment method representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod value is valid.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// VoucherStatus tracks the back-office verification of a payment voucher.
// Vouchers matter for non-cash payments where the courier hands in proof of
// payment at the end of the shift.
type VoucherStatus int

const (
	// VoucherUnknown represents an invalid or undefined voucher status.
	VoucherUnknown VoucherStatus = iota

	// VoucherPending means no voucher has been handed in yet.
	VoucherPending

	// VoucherReceived means the voucher arrived but has not been checked.
	VoucherReceived

	// VoucherVerified means back office confirmed the voucher.
	VoucherVerified

	// VoucherRejected means the voucher failed verification.
	VoucherRejected
)

func getVoucherStatusStrings() map[VoucherStatus]string {
	//nolint:exhaustive // VoucherUnknown is intentionally excluded as it's invalid
	return map[VoucherStatus]string{
		VoucherPending:  "pending",
		VoucherReceived: "received",
		VoucherVerified: "verified",
		VoucherRejected: "rejected",
	}
}

// VoucherStatusFromString parses a persisted voucher status representation.
func VoucherStatusFromString(s string) (VoucherStatus, error) {
	for status, name := range getVoucherStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return VoucherUnknown, errs.NewValueIsInvalidErrorWithCause("voucherStatus",
		fmt.Errorf("%q is not a valid voucher status", s))
}

// Validate checks if the VoucherStatus value is valid.
func (v VoucherStatus) Validate() error {
	if _, ok := getVoucherStatusStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("voucherStatus",
			fmt.Errorf("%d is not a valid voucher status", v))
	}
	return nil
}

// String returns the wire name of the voucher status.
func (v VoucherStatus) String() string {
	if str, ok := getVoucherStatusStrings()[v]; ok {
		return str
	}
	return "unknown"
}
