package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// Membership is anything Inclusion and Exclusion can test values against.
type Membership interface {
	Contains(v any) bool
}

// Range is an inclusive interval over numbers, strings or times. A nil
// bound leaves that side open.
type Range struct {
	Min any
	Max any
}

// Between returns the inclusive range [min, max].
func Between(min, max any) Range { return Range{Min: min, Max: max} }

// AtLeast returns the range [min, +inf).
func AtLeast(min any) Range { return Range{Min: min} }

// AtMost returns the range (-inf, max].
func AtMost(max any) Range { return Range{Max: max} }

// Contains reports whether v lies within the bounds, both inclusive.
// Values that cannot be compared with a bound are outside.
func (r Range) Contains(v any) bool {
	if r.Min != nil {
		if c, ok := compare(v, r.Min); !ok || c < 0 {
			return false
		}
	}
	if r.Max != nil {
		if c, ok := compare(v, r.Max); !ok || c > 0 {
			return false
		}
	}
	return true
}

// String renders the range as "min..max".
func (r Range) String() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%v..%v", r.Min, r.Max)
	case r.Min != nil:
		return fmt.Sprintf("%v..", r.Min)
	case r.Max != nil:
		return fmt.Sprintf("..%v", r.Max)
	}
	return ".."
}

// Enum is an enumerated set of allowed or forbidden values. Numbers match
// across Go numeric types.
type Enum []any

// OneOf builds an Enum.
func OneOf(values ...any) Enum { return Enum(values) }

// Contains reports whether v equals one of the values.
func (e Enum) Contains(v any) bool {
	for _, item := range e {
		if Equal(item, v) {
			return true
		}
	}
	return false
}

// String renders the values comma separated.
func (e Enum) String() string {
	parts := make([]string, len(e))
	for i, item := range e {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ", ")
}

// Equal compares two values, treating numbers of different Go types and
// equal instants as equal.
func Equal(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	c, ok := compare(a, b)
	return ok && c == 0
}

// compare orders numbers, strings and times. The boolean is false for
// values that cannot be ordered against each other.
func compare(a, b any) (int, bool) {
	if da, ok := number(a); ok {
		db, ok := number(b)
		if !ok {
			return 0, false
		}
		return da.Cmp(db), true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	}
	return 0, false
}

func number(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int8:
		return decimal.NewFromInt(int64(x)), true
	case int16:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case uint, uint8, uint16, uint32, uint64:
		d, err := decimal.NewFromString(fmt.Sprint(x))
		return d, err == nil
	case float32:
		return floatNumber(float64(x))
	case float64:
		return floatNumber(x)
	case decimal.Decimal:
		return x, true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func floatNumber(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// prepareMembership normalizes the membership parameter name of validator.
func prepareMembership(validator, name string, params types.Params) (types.Params, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return nil, invalidParams(validator, "%q parameter is required", name)
	}

	var m Membership
	switch v := raw.(type) {
	case Range:
		m = v
	case *Range:
		if v == nil {
			return nil, invalidParams(validator, "nil range")
		}
		m = *v
	case Enum:
		m = v
	case Membership:
		m = v
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, invalidParams(validator, "unsupported %s %T", name, raw)
		}
		e := make(Enum, rv.Len())
		for i := range rv.Len() {
			e[i] = rv.Index(i).Interface()
		}
		m = e
	}
	return params.Merge(types.Params{name: m}), nil
}

func rangeValues(r Range) map[string]any {
	return map[string]any{"min": r.Min, "max": r.Max}
}

type inclusion struct{}

func (inclusion) Name() string { return Inclusion }
func (inclusion) Arity() int   { return 1 }

// Prepare accepts a Range, an Enum, any Membership or a slice.
func (inclusion) Prepare(params types.Params) (types.Params, error) {
	return prepareMembership(Inclusion, types.ParamIn, params)
}

func (inclusion) Validate(params types.Params, values ...any) Result {
	v := values[0]
	if isNil(v) {
		return Pass()
	}
	m, _ := params[types.ParamIn].(Membership)
	if m == nil || m.Contains(v) {
		return Pass()
	}
	switch set := m.(type) {
	case Range:
		switch {
		case set.Min != nil && set.Max != nil:
			return Fail(CodeNotInRange, fmt.Sprintf("must be between %v and %v", set.Min, set.Max), "validation.between", rangeValues(set))
		case set.Min != nil:
			return Fail(CodeNotInRange, fmt.Sprintf("must be at least %v", set.Min), "validation.min", rangeValues(set))
		default:
			return Fail(CodeNotInRange, fmt.Sprintf("must be at most %v", set.Max), "validation.max", rangeValues(set))
		}
	case Enum:
		return Fail(CodeNotIncluded, "must be one of: "+set.String(), "validation.in_list", map[string]any{"allowed_values": set.String()})
	}
	return Fail(CodeNotIncluded, "is not included in the list", "validation.in_list", nil)
}

type exclusion struct{}

func (exclusion) Name() string { return Exclusion }
func (exclusion) Arity() int   { return 1 }

func (exclusion) Prepare(params types.Params) (types.Params, error) {
	return prepareMembership(Exclusion, types.ParamNotIn, params)
}

func (exclusion) Validate(params types.Params, values ...any) Result {
	v := values[0]
	if isNil(v) {
		return Pass()
	}
	m, _ := params[types.ParamNotIn].(Membership)
	if m == nil || !m.Contains(v) {
		return Pass()
	}
	switch set := m.(type) {
	case Range:
		return Fail(CodeInRange, "must not be within "+set.String(), "validation.not_between", rangeValues(set))
	case Enum:
		return Fail(CodeExcluded, "must not be one of: "+set.String(), "validation.not_in_list", map[string]any{"forbidden_values": set.String()})
	}
	return Fail(CodeExcluded, "is reserved", "validation.not_in_list", nil)
}
