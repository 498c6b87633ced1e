package validator_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

func TestRange(t *testing.T) {
	r := validator.Between(1, 10)
	assert.True(t, r.Contains(int64(1)))
	assert.True(t, r.Contains(10.0))
	assert.True(t, r.Contains(decimal.RequireFromString("5.5")))
	assert.False(t, r.Contains(int64(11)))
	assert.False(t, r.Contains("5"))
	assert.Equal(t, "1..10", r.String())

	letters := validator.Between("a", "m")
	assert.True(t, letters.Contains("hello"))
	assert.False(t, letters.Contains("zebra"))

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, validator.AtMost(feb).Contains(jan))
	assert.False(t, validator.AtLeast(feb).Contains(jan))
}

func TestEnum(t *testing.T) {
	e := validator.OneOf(1, 2, "three")
	assert.True(t, e.Contains(int64(2)))
	assert.True(t, e.Contains(1.0))
	assert.True(t, e.Contains("three"))
	assert.False(t, e.Contains("3"))
	assert.Equal(t, "1, 2, three", e.String())
}

func TestInclusion(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		params := types.Params{types.ParamIn: validator.Between(1, 5)}
		assert.True(t, run(t, validator.Inclusion, params, int64(3)).Valid)
		assert.True(t, run(t, validator.Inclusion, params, nil).Valid)

		res := run(t, validator.Inclusion, params, int64(9))
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeNotInRange, res.Code)
		assert.Equal(t, "must be between 1 and 5", res.Message)
	})

	t.Run("half open range", func(t *testing.T) {
		params := types.Params{types.ParamIn: validator.AtLeast(18)}
		res := run(t, validator.Inclusion, params, int64(17))
		assert.Equal(t, "must be at least 18", res.Message)
	})

	t.Run("enumeration from a slice", func(t *testing.T) {
		params := types.Params{types.ParamIn: []string{"draft", "published"}}
		assert.True(t, run(t, validator.Inclusion, params, "draft").Valid)

		res := run(t, validator.Inclusion, params, "deleted")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeNotIncluded, res.Code)
		assert.Equal(t, "must be one of: draft, published", res.Message)
	})

	t.Run("requires a membership parameter", func(t *testing.T) {
		v := validator.Default().MustLookup(validator.Inclusion)
		_, err := v.Prepare(types.Params{})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
		_, err = v.Prepare(types.Params{types.ParamIn: 5})
		assert.ErrorIs(t, err, validator.ErrInvalidParams)
	})
}

func TestExclusion(t *testing.T) {
	t.Run("enumeration", func(t *testing.T) {
		params := types.Params{types.ParamNotIn: validator.OneOf("admin", "root")}
		assert.True(t, run(t, validator.Exclusion, params, "alice").Valid)
		assert.True(t, run(t, validator.Exclusion, params, nil).Valid)

		res := run(t, validator.Exclusion, params, "root")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeExcluded, res.Code)
		assert.Equal(t, "must not be one of: admin, root", res.Message)
	})

	t.Run("range", func(t *testing.T) {
		params := types.Params{types.ParamNotIn: validator.Between(10, 20)}
		res := run(t, validator.Exclusion, params, 15.5)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.CodeInRange, res.Code)
		assert.Equal(t, "must not be within 10..20", res.Message)
	})
}
