package order_test

import (
	"testing"

	"fluxi/internal/core/domain/model/order"
	"fluxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("round_trips_all_valid_methods", func(t *testing.T) {
		methods := []order.PaymentMethod{
			order.PaymentCash,
			order.PaymentCardTerminal,
			order.PaymentTransfer,
			order.PaymentThirdPartyApp,
			order.PaymentOther,
		}
		for _, m := range methods {
			parsed, err := order.PaymentMethodFromString(m.String())
			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
	})

	t.Run("rejects_unknown_method", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("bitcoin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentMethod_Validate(t *testing.T) {
	require.NoError(t, order.PaymentCash.Validate())
	require.Error(t, order.PaymentUnknown.Validate())
	require.Error(t, order.PaymentMethod(42).Validate())
}

func TestVoucherStatusFromString(t *testing.T) {
	t.Run("round_trips_all_valid_statuses", func(t *testing.T) {
		statuses := []order.VoucherStatus{
			order.VoucherPending,
			order.VoucherReceived,
			order.VoucherVerified,
			order.VoucherRejected,
		}
		for _, v := range statuses {
			parsed, err := order.VoucherStatusFromString(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.VoucherStatusFromString("lost")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestVoucherStatus_Validate(t *testing.T) {
	require.NoError(t, order.VoucherVerified.Validate())
	require.Error(t, order.VoucherUnknown.Validate())
}
