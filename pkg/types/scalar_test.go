package types_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestBoolean(t *testing.T) {
	t.Run("keeps nil", func(t *testing.T) {
		v := &types.Boolean{}
		v.Set(nil)
		assert.Nil(t, v.Get())
		assert.True(t, v.IsNil())
	})

	t.Run("keeps bool values", func(t *testing.T) {
		v := &types.Boolean{}
		v.Set(false)
		assert.Equal(t, false, v.Get())
		v.Set(true)
		assert.Equal(t, true, v.Get())
	})

	t.Run("casts anything else by truthiness", func(t *testing.T) {
		for _, raw := range []any{0, "", "false", 1.5, []any{}} {
			v := &types.Boolean{}
			v.Set(raw)
			assert.Equal(t, true, v.Get(), "input %#v", raw)
		}
	})

	t.Run("treats typed nil pointers as nil", func(t *testing.T) {
		v := &types.Boolean{}
		var p *int
		v.Set(p)
		assert.Nil(t, v.Get())
	})
}

func TestString(t *testing.T) {
	id := bson.NewObjectID()
	tests := []struct {
		name string
		raw  any
		want any
	}{
		{"nil stays nil", nil, nil},
		{"string is kept", "hello", "hello"},
		{"empty string is kept", "", ""},
		{"integer is formatted", 42, "42"},
		{"float is formatted", 1.5, "1.5"},
		{"bool is formatted", true, "true"},
		{"bytes are converted", []byte("raw"), "raw"},
		{"stringer is used", stringer{}, "stringer"},
		{"object id uses hex", id, id.Hex()},
		{"error uses message", errors.New("boom"), "boom"},
		{"decimal is formatted", decimal.RequireFromString("1.25"), "1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &types.String{}
			v.Set(tt.raw)
			assert.Equal(t, tt.want, v.Get())
		})
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want any
	}{
		{"nil stays nil", nil, nil},
		{"int", 7, int64(7)},
		{"int32", int32(-3), int64(-3)},
		{"uint8", uint8(200), int64(200)},
		{"float is truncated", 12.9, int64(12)},
		{"numeric string", " 15 ", int64(15)},
		{"json number", json.Number("99"), int64(99)},
		{"decimal", decimal.RequireFromString("10.7"), int64(10)},
		{"fractional string is not an integer", "12.5", nil},
		{"word is not numeric", "twelve", nil},
		{"bool is not numeric", true, nil},
		{"NaN is rejected", math.NaN(), nil},
		{"overflowing uint is rejected", uint64(math.MaxUint64), nil},
		{"slice is rejected", []int{1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &types.Integer{}
			v.Set(tt.raw)
			assert.Equal(t, tt.want, v.Get())
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want any
	}{
		{"nil stays nil", nil, nil},
		{"float", 1.25, 1.25},
		{"int", 3, 3.0},
		{"string", "2.5", 2.5},
		{"decimal", decimal.RequireFromString("0.5"), 0.5},
		{"word", "abc", nil},
		{"infinity string", "Inf", nil},
		{"map", map[string]any{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &types.Float{}
			v.Set(tt.raw)
			assert.Equal(t, tt.want, v.Get())
		})
	}
}

func TestDecimal(t *testing.T) {
	t.Run("parses strings exactly", func(t *testing.T) {
		v := &types.Decimal{}
		v.Set("0.1")
		d, ok := v.Decimal()
		require.True(t, ok)
		assert.True(t, d.Equal(decimal.RequireFromString("0.1")))
	})

	t.Run("converts bson decimal128", func(t *testing.T) {
		d128, err := bson.ParseDecimal128("12.34")
		require.NoError(t, err)
		v := &types.Decimal{}
		v.Set(d128)
		d, ok := v.Decimal()
		require.True(t, ok)
		assert.Equal(t, "12.34", d.String())
	})

	t.Run("converts integers", func(t *testing.T) {
		v := &types.Decimal{}
		v.Set(5)
		d, ok := v.Decimal()
		require.True(t, ok)
		assert.True(t, d.Equal(decimal.NewFromInt(5)))
	})

	t.Run("rejects non numeric input", func(t *testing.T) {
		v := &types.Decimal{}
		v.Set("1.2.3")
		assert.Nil(t, v.Get())
		v.Set(math.Inf(1))
		assert.Nil(t, v.Get())
	})
}

func TestTime(t *testing.T) {
	t.Run("keeps time values", func(t *testing.T) {
		now := time.Now()
		v := &types.Time{}
		v.Set(now)
		assert.Equal(t, now, v.Get())
	})

	t.Run("reads integers as unix seconds", func(t *testing.T) {
		v := &types.Time{}
		v.Set(1700000000)
		got, ok := v.Time()
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got.Unix())
	})

	t.Run("reads floats as fractional unix seconds", func(t *testing.T) {
		v := &types.Time{}
		v.Set(10.5)
		got, ok := v.Time()
		require.True(t, ok)
		assert.Equal(t, int64(10), got.Unix())
		assert.Equal(t, 500*time.Millisecond, time.Duration(got.Nanosecond()))
	})

	t.Run("parses date strings", func(t *testing.T) {
		v := &types.Time{}
		v.Set("2024-03-15T10:30:00Z")
		got, ok := v.Time()
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
	})

	t.Run("converts bson datetime", func(t *testing.T) {
		ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		v := &types.Time{}
		v.Set(bson.NewDateTimeFromTime(ts))
		got, ok := v.Time()
		require.True(t, ok)
		assert.True(t, got.Equal(ts))
	})

	t.Run("garbage becomes nil", func(t *testing.T) {
		for _, raw := range []any{"not a date", "", true, []any{1}} {
			v := &types.Time{}
			v.Set(raw)
			assert.Nil(t, v.Get(), "input %#v", raw)
		}
	})
}

func TestObjectID(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("keeps ids", func(t *testing.T) {
		v := &types.ObjectID{}
		v.Set(id)
		assert.Equal(t, id, v.Get())
	})

	t.Run("parses legal hex strings", func(t *testing.T) {
		v := &types.ObjectID{}
		v.Set(id.Hex())
		assert.Equal(t, id, v.Get())
	})

	t.Run("rejects illegal strings", func(t *testing.T) {
		for _, raw := range []any{"abc", "zzzzzzzzzzzzzzzzzzzzzzzz", 12, id.Hex() + "00"} {
			v := &types.ObjectID{}
			v.Set(raw)
			assert.Nil(t, v.Get(), "input %#v", raw)
		}
	})
}

func TestAssigningValueToValue(t *testing.T) {
	src := &types.Integer{}
	src.Set(5)
	dst := &types.String{}
	dst.Set(src)
	assert.Equal(t, "5", dst.Get())
}
