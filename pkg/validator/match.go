package validator

import "github.com/dmitrymomot/docmodel/pkg/types"

type valueMatch struct{}

func (valueMatch) Name() string { return ValueMatch }
func (valueMatch) Arity() int   { return 2 }

func (valueMatch) Prepare(params types.Params) (types.Params, error) { return params, nil }

// Validate passes when both values are nil or equal.
func (valueMatch) Validate(_ types.Params, values ...any) Result {
	a, b := values[0], values[1]
	if isNil(a) && isNil(b) {
		return Pass()
	}
	if !isNil(a) && !isNil(b) && Equal(a, b) {
		return Pass()
	}
	return Fail(CodeNoMatch, "do not match", "validation.match", nil)
}
