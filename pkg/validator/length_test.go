package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

func TestLengthPrepare(t *testing.T) {
	v := validator.Default().MustLookup(validator.Length)

	t.Run("requires the length parameter", func(t *testing.T) {
		_, err := v.Prepare(types.Params{})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
	})

	t.Run("rejects inverted ranges", func(t *testing.T) {
		_, err := v.Prepare(types.Params{types.ParamLength: validator.Between(5, 1)})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
	})

	t.Run("rejects non integer bounds", func(t *testing.T) {
		_, err := v.Prepare(types.Params{types.ParamLength: validator.Between("a", "z")})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
		_, err = v.Prepare(types.Params{types.ParamLength: "1..3"})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once, err := v.Prepare(types.Params{types.ParamLength: [2]int{1, 3}})
		require.NoError(t, err)
		twice, err := v.Prepare(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}

func TestLength(t *testing.T) {
	params := types.Params{types.ParamLength: validator.Between(2, 4)}

	tests := []struct {
		name  string
		value any
		code  validator.ErrorCode
	}{
		{"within range", "abc", ""},
		{"at minimum", "ab", ""},
		{"at maximum", "abcd", ""},
		{"too short", "a", validator.CodeShort},
		{"too long", "abcde", validator.CodeLong},
		{"counts runes", "ñññ", ""},
		{"counts composed characters once", "éé", ""},
		{"slices have a length", []any{1}, validator.CodeShort},
		{"maps have a length", map[string]int{"a": 1, "b": 2}, ""},
		{"nil has no length", nil, ""},
		{"numbers have no length", int64(1), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, validator.Length, params, tt.value)
			assert.Equal(t, tt.code == "", res.Valid)
			assert.Equal(t, tt.code, res.Code)
		})
	}

	t.Run("messages name the bound", func(t *testing.T) {
		res := run(t, validator.Length, params, "a")
		assert.Equal(t, "is too short (minimum is 2 characters)", res.Message)
		assert.Equal(t, "validation.min_length", res.TranslationKey)
		assert.Equal(t, 2, res.TranslationValues["min"])

		res = run(t, validator.Length, params, []any{1, 2, 3, 4, 5})
		assert.Equal(t, "is too long (maximum is 4 items)", res.Message)
	})

	t.Run("counts combining sequences once", func(t *testing.T) {
		two := types.Params{types.ParamLength: validator.AtMost(2)}
		assert.True(t, run(t, validator.Length, two, "e\u0301e\u0301").Valid)
	})

	t.Run("open upper bound", func(t *testing.T) {
		open := types.Params{types.ParamLength: [2]int{3, -1}}
		assert.True(t, run(t, validator.Length, open, "a long string indeed").Valid)
		assert.False(t, run(t, validator.Length, open, "ab").Valid)
	})

	t.Run("exact length", func(t *testing.T) {
		exact := types.Params{types.ParamLength: 2}
		assert.True(t, run(t, validator.Length, exact, "ab").Valid)
		assert.Equal(t, validator.CodeLong, run(t, validator.Length, exact, "abc").Code)
	})
}
