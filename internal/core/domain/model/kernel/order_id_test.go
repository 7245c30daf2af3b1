package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDFromInt64(t *testing.T) {
	t.Run("should create order ID from positive key", func(t *testing.T) {
		id, err := kernel.OrderIDFromInt64(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject non-positive keys", func(t *testing.T) {
		for _, raw := range []int64{0, -1, -42} {
			_, err := kernel.OrderIDFromInt64(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should parse decimal identifiers", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("7")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.5", "7x"} {
			_, err := kernel.OrderIDFromString(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject non-positive identifiers", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("0")
		require.Error(t, err)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromInt64(1)
	require.NoError(t, err)
	b, err := kernel.OrderIDFromInt64(1)
	require.NoError(t, err)
	c, err := kernel.OrderIDFromInt64(2)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is unassigned", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotAssigned)
	})
}
