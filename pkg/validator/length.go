package validator

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

type length struct{}

func (length) Name() string { return Length }
func (length) Arity() int   { return 1 }

// Prepare accepts a Range of integers, a [2]int pair (negative max means
// unbounded) or a single int for an exact length.
func (length) Prepare(params types.Params) (types.Params, error) {
	raw, ok := params[types.ParamLength]
	if !ok || raw == nil {
		return nil, invalidParams(Length, "%q parameter is required", types.ParamLength)
	}

	var r Range
	switch v := raw.(type) {
	case lengthBounds:
		return params, nil
	case Range:
		r = v
	case *Range:
		if v == nil {
			return nil, invalidParams(Length, "nil range")
		}
		r = *v
	case [2]int:
		r = Range{Min: v[0]}
		if v[1] >= 0 {
			r.Max = v[1]
		}
	case int:
		r = Range{Min: v, Max: v}
	default:
		return nil, invalidParams(Length, "unsupported length %T", raw)
	}

	lo, hi, err := intBounds(r)
	if err != nil {
		return nil, err
	}
	if lo != nil && hi != nil && *lo > *hi {
		return nil, invalidParams(Length, "minimum %d is greater than maximum %d", *lo, *hi)
	}
	return params.Merge(types.Params{types.ParamLength: lengthBounds{min: lo, max: hi}}), nil
}

type lengthBounds struct {
	min, max *int
}

func intBounds(r Range) (lo, hi *int, err error) {
	bound := func(b any) (*int, error) {
		switch n := b.(type) {
		case nil:
			return nil, nil
		case int:
			if n < 0 {
				return nil, invalidParams(Length, "negative bound %d", n)
			}
			return &n, nil
		}
		return nil, invalidParams(Length, "bounds must be int, got %T", b)
	}
	if lo, err = bound(r.Min); err != nil {
		return nil, nil, err
	}
	if hi, err = bound(r.Max); err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

// measure returns the length of strings (in normalized runes) and
// containers. Other values have no length.
func measure(v any) (n int, unit string, ok bool) {
	if s, isString := v.(string); isString {
		return utf8.RuneCountInString(norm.NFC.String(s)), "characters", true
	}
	if isNil(v) {
		return 0, "", false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), "items", true
	}
	return 0, "", false
}

func (length) Validate(params types.Params, values ...any) Result {
	b, _ := params[types.ParamLength].(lengthBounds)
	n, unit, ok := measure(values[0])
	if !ok {
		return Pass()
	}
	if b.min != nil && n < *b.min {
		return Fail(CodeShort,
			fmt.Sprintf("is too short (minimum is %d %s)", *b.min, unit),
			"validation.min_length",
			map[string]any{"min": *b.min, "count": n},
		)
	}
	if b.max != nil && n > *b.max {
		return Fail(CodeLong,
			fmt.Sprintf("is too long (maximum is %d %s)", *b.max, unit),
			"validation.max_length",
			map[string]any{"max": *b.max, "count": n},
		)
	}
	return Pass()
}
