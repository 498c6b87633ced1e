package types_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

func TestIntegerIncrement(t *testing.T) {
	t.Run("increments by one by default", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(10)
		require.NoError(t, v.Increment(nil))
		assert.Equal(t, int64(11), v.Get())
		assert.Equal(t, int64(1), v.IncrementedBy())
	})

	t.Run("accumulates increments", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(10)
		require.NoError(t, v.Increment(5))
		require.NoError(t, v.Increment("-2"))
		assert.Equal(t, int64(13), v.Get())
		assert.Equal(t, int64(3), v.IncrementedBy())
	})

	t.Run("assignment resets the delta", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(1)
		require.NoError(t, v.Increment(4))
		v.Set(100)
		assert.Equal(t, int64(0), v.IncrementedBy())
		assert.Equal(t, int64(100), v.Get())
	})

	t.Run("nil value counts as zero", func(t *testing.T) {
		v := &types.Integer{}
		require.NoError(t, v.Increment(3))
		assert.Equal(t, int64(3), v.Get())
	})

	t.Run("rejects non integral amounts", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(1)
		for _, amount := range []any{1.5, "x", true} {
			err := v.Increment(amount)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrInvalidArgument)
		}
		assert.Equal(t, int64(1), v.Get())
		assert.Equal(t, int64(0), v.IncrementedBy())
	})

	t.Run("rejects increments that overflow", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(int64(math.MaxInt64 - 1))
		require.NoError(t, v.Increment(1))
		err := v.Increment(1)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidArgument)
		assert.Equal(t, int64(math.MaxInt64), v.Get())
		assert.Equal(t, int64(1), v.IncrementedBy())

		v.Set(int64(math.MinInt64))
		assert.ErrorIs(t, v.Increment(-1), types.ErrInvalidArgument)
		assert.Equal(t, int64(math.MinInt64), v.Get())
	})

	t.Run("commit resets the delta", func(t *testing.T) {
		v := &types.Integer{}
		v.Set(1)
		require.NoError(t, v.Increment(2))
		v.Commit()
		assert.Equal(t, int64(0), v.IncrementedBy())
		assert.Equal(t, int64(3), v.Get())
	})
}

func TestFloatIncrement(t *testing.T) {
	v := &types.Float{}
	v.Set(1.5)
	require.NoError(t, v.Increment(0.25))
	require.NoError(t, v.Increment(nil))
	assert.Equal(t, 2.75, v.Get())
	assert.Equal(t, 1.25, v.IncrementedBy())

	err := v.Increment("abc")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	v.Set(0)
	assert.Equal(t, 0.0, v.IncrementedBy())
}

func TestDecimalIncrement(t *testing.T) {
	v := &types.Decimal{}
	v.Set("0.1")
	require.NoError(t, v.Increment("0.2"))

	got, ok := v.Decimal()
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("0.3")))

	delta, ok := v.IncrementedBy().(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, delta.Equal(decimal.RequireFromString("0.2")))

	assert.ErrorIs(t, v.Increment([]int{1}), types.ErrInvalidArgument)

	v.Set(1)
	delta = v.IncrementedBy().(decimal.Decimal)
	assert.True(t, delta.IsZero())
}
