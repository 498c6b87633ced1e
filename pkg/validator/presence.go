package validator

import (
	"reflect"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// emptiness reports whether v is empty and whether v has a notion of
// emptiness at all.
func emptiness(v any) (empty, supported bool) {
	switch x := v.(type) {
	case string:
		return x == "", true
	case []any:
		return len(x) == 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len() == 0, true
	}
	return false, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

type presence struct{}

func (presence) Name() string { return Presence }
func (presence) Arity() int   { return 1 }

func (presence) Prepare(params types.Params) (types.Params, error) { return params, nil }

// Validate fails with CodeMissing on nil and CodeEmpty on empty strings and
// containers.
func (presence) Validate(_ types.Params, values ...any) Result {
	v := values[0]
	if isNil(v) {
		return Fail(CodeMissing, "is required", "validation.required", nil)
	}
	if empty, ok := emptiness(v); ok && empty {
		return Fail(CodeEmpty, "can't be empty", "validation.empty", nil)
	}
	return Pass()
}

type absence struct{}

func (absence) Name() string { return Absence }
func (absence) Arity() int   { return 1 }

func (absence) Prepare(params types.Params) (types.Params, error) { return params, nil }

// Validate passes nil and empty values only.
func (absence) Validate(_ types.Params, values ...any) Result {
	v := values[0]
	if isNil(v) {
		return Pass()
	}
	if empty, ok := emptiness(v); ok && empty {
		return Pass()
	}
	return Fail(CodePresent, "must be blank", "validation.absent", nil)
}
