package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Integer holds nil or an int64.
type Integer struct {
	value         int64
	valid         bool
	incrementedBy int64
}

// Kind returns KindInteger.
func (i *Integer) Kind() Kind { return KindInteger }

// IsNil reports whether the value is nil.
func (i *Integer) IsNil() bool { return !i.valid }

// Int returns the value and whether it is set.
func (i *Integer) Int() (int64, bool) { return i.value, i.valid }

// Get returns an int64 or nil.
func (i *Integer) Get() any {
	if !i.valid {
		return nil
	}
	return i.value
}

// Set converts integers, floats (truncated), decimals and base-10 strings.
// It resets the increment delta.
func (i *Integer) Set(raw any) {
	i.value, i.valid = toInt64(unwrap(raw))
	i.incrementedBy = 0
}

// Increment adds amount, which must be integral. A nil value counts as zero.
// An increment that would overflow int64 is rejected and leaves the value
// untouched.
func (i *Integer) Increment(amount any) error {
	n := int64(1)
	if amount != nil {
		var ok bool
		if !integral(amount) {
			return invalidAmount(KindInteger, amount)
		}
		if n, ok = toInt64(amount); !ok {
			return invalidAmount(KindInteger, amount)
		}
	}
	value, ok := addInt64(i.value, n)
	if !ok {
		return invalidAmount(KindInteger, amount)
	}
	delta, ok := addInt64(i.incrementedBy, n)
	if !ok {
		return invalidAmount(KindInteger, amount)
	}
	i.value, i.incrementedBy = value, delta
	i.valid = true
	return nil
}

// addInt64 returns a+b and false when the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func integral(amount any) bool {
	switch v := amount.(type) {
	case float32:
		return float64(v) == math.Trunc(float64(v))
	case float64:
		return v == math.Trunc(v)
	}
	return true
}

// IncrementedBy returns the int64 sum of increments since the last Set or Commit.
func (i *Integer) IncrementedBy() any { return i.incrementedBy }

// Commit resets the increment delta.
func (i *Integer) Commit() { i.incrementedBy = 0 }

// Float holds nil or a finite float64.
type Float struct {
	value         float64
	valid         bool
	incrementedBy float64
}

// Kind returns KindFloat.
func (f *Float) Kind() Kind { return KindFloat }

// IsNil reports whether the value is nil.
func (f *Float) IsNil() bool { return !f.valid }

// Float returns the value and whether it is set.
func (f *Float) Float() (float64, bool) { return f.value, f.valid }

// Get returns a float64 or nil.
func (f *Float) Get() any {
	if !f.valid {
		return nil
	}
	return f.value
}

// Set converts numbers, decimals and numeric strings. NaN and infinities
// become nil. It resets the increment delta.
func (f *Float) Set(raw any) {
	f.value, f.valid = toFloat64(unwrap(raw))
	f.incrementedBy = 0
}

// Increment adds amount, one when nil. A nil value counts as zero.
func (f *Float) Increment(amount any) error {
	n := 1.0
	if amount != nil {
		var ok bool
		if n, ok = toFloat64(amount); !ok {
			return invalidAmount(KindFloat, amount)
		}
	}
	f.value += n
	f.valid = true
	f.incrementedBy += n
	return nil
}

// IncrementedBy returns the float64 sum of increments since the last Set or Commit.
func (f *Float) IncrementedBy() any { return f.incrementedBy }

// Commit resets the increment delta.
func (f *Float) Commit() { f.incrementedBy = 0 }

// Decimal holds nil or an arbitrary precision decimal.
type Decimal struct {
	value         decimal.Decimal
	valid         bool
	incrementedBy decimal.Decimal
}

// Kind returns KindDecimal.
func (d *Decimal) Kind() Kind { return KindDecimal }

// IsNil reports whether the value is nil.
func (d *Decimal) IsNil() bool { return !d.valid }

// Decimal returns the value and whether it is set.
func (d *Decimal) Decimal() (decimal.Decimal, bool) { return d.value, d.valid }

// Get returns a decimal.Decimal or nil.
func (d *Decimal) Get() any {
	if !d.valid {
		return nil
	}
	return d.value
}

// Set converts numbers, bson.Decimal128 and decimal strings exactly. It
// resets the increment delta.
func (d *Decimal) Set(raw any) {
	d.value, d.valid = toDecimal(unwrap(raw))
	d.incrementedBy = decimal.Zero
}

// Increment adds amount, one when nil, without rounding.
func (d *Decimal) Increment(amount any) error {
	n := decimal.NewFromInt(1)
	if amount != nil {
		var ok bool
		if n, ok = toDecimal(amount); !ok {
			return invalidAmount(KindDecimal, amount)
		}
	}
	d.value = d.value.Add(n)
	d.valid = true
	d.incrementedBy = d.incrementedBy.Add(n)
	return nil
}

// IncrementedBy returns the decimal.Decimal sum of increments since the last Set or Commit.
func (d *Decimal) IncrementedBy() any { return d.incrementedBy }

// Commit resets the increment delta.
func (d *Decimal) Commit() { d.incrementedBy = decimal.Zero }
