package validation

import (
	"slices"

	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

// Target is the record a unit runs against.
type Target interface {
	// Read returns the current value of an attribute.
	Read(name string) (any, error)
	// Failures is the report failures are appended to.
	Failures() *Report
}

// Unit is a Validation or a Chain.
type Unit interface {
	Run(t Target) bool
	// Attributes lists every attribute the unit reads.
	Attributes() []string
	unit()
}

// Validation binds a validator to attributes and prepared parameters. It is
// immutable once built.
type Validation struct {
	validator validator.Validator
	attrs     []string
	params    types.Params
}

// New resolves name in the default validator registry.
func New(name string, params types.Params, attrs ...string) (*Validation, error) {
	return NewFrom(validator.Default(), name, params, attrs...)
}

// NewFrom resolves name in reg.
func NewFrom(reg *validator.Registry, name string, params types.Params, attrs ...string) (*Validation, error) {
	v, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Of(v, params, attrs...)
}

// Of builds a validation from a validator value. The number of attributes
// must match the validator's arity.
func Of(v validator.Validator, params types.Params, attrs ...string) (*Validation, error) {
	if len(attrs) == 0 {
		return nil, ErrNoAttributes
	}
	if len(attrs) != v.Arity() {
		return nil, &validator.ArityError{Validator: v.Name(), Want: v.Arity(), Got: len(attrs)}
	}
	prepared, err := v.Prepare(params)
	if err != nil {
		return nil, err
	}
	return &Validation{
		validator: v,
		attrs:     slices.Clone(attrs),
		params:    prepared,
	}, nil
}

// MustNew is like New but panics on assembly errors.
func MustNew(name string, params types.Params, attrs ...string) *Validation {
	v, err := New(name, params, attrs...)
	if err != nil {
		panic(err)
	}
	return v
}

// Validator returns the validator name.
func (v *Validation) Validator() string { return v.validator.Name() }

// Attributes returns the validated attribute names in order.
func (v *Validation) Attributes() []string { return slices.Clone(v.attrs) }

// Params returns a copy of the prepared parameters.
func (v *Validation) Params() types.Params { return v.params.Merge(nil) }

func (v *Validation) unit() {}

// Run validates the current attribute values and records a failure in the
// target's report. Attributes the target cannot read are checked as nil.
func (v *Validation) Run(t Target) bool {
	values := make([]any, len(v.attrs))
	for i, name := range v.attrs {
		values[i], _ = t.Read(name)
	}
	// arity was checked by Of
	res, _ := validator.Check(v.validator, v.params, values...)
	if !res.Valid {
		t.Failures().Record(v.attrs, v.validator.Name(), res)
	}
	return res.Valid
}
