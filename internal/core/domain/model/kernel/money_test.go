package kernel_test

import (
	"testing"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_positive_amount", func(t *testing.T) {
		// When
		m, err := kernel.NewMoney(25000)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(25000), m.Amount())
		assert.True(t, m.IsPositive())
		assert.False(t, m.IsZero())
	})

	t.Run("accepts_zero_amount", func(t *testing.T) {
		// When
		m, err := kernel.NewMoney(0)

		// Then
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
		require.NoError(t, m.Validate())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		// When
		_, err := kernel.NewMoney(-1)

		// Then
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("sums_order_value_and_fee", func(t *testing.T) {
		// Given
		value, _ := kernel.NewMoney(25000)
		fee, _ := kernel.NewMoney(5000)

		// When
		total, err := value.Add(fee)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(30000), total.Amount())
	})

	t.Run("rejects_unconstructed_operand", func(t *testing.T) {
		// Given
		value, _ := kernel.NewMoney(25000)
		var zero kernel.Money

		// When
		_, err := value.Add(zero)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var m kernel.Money
		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(5000)
	assert.Equal(t, "5000 COP", m.String())
}
