package types

import "maps"

// Kind names a value type.
type Kind string

const (
	KindBase       Kind = "base"
	KindNumeric    Kind = "numeric"
	KindCollection Kind = "collection"

	KindBoolean  Kind = "boolean"
	KindString   Kind = "string"
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindDecimal  Kind = "decimal"
	KindTime     Kind = "time"
	KindObjectID Kind = "object_id"
	KindArray    Kind = "array"
	KindSet      Kind = "set"
)

// Well-known parameter names shared by types, keys and validators.
const (
	ParamRequired = "required"
	ParamDefault  = "default"
	ParamLength   = "length"
	ParamFormat   = "format"
	ParamIn       = "in"
	ParamNotIn    = "not_in"
)

// Params is a parameter bag. A nil entry means the parameter is unset.
type Params map[string]any

// Merge returns a copy of p overlaid with over. Entries in over win.
func (p Params) Merge(over Params) Params {
	out := make(Params, len(p)+len(over))
	maps.Copy(out, p)
	maps.Copy(out, over)
	return out
}

// Bool reports the parameter as a bool; anything but true is false.
func (p Params) Bool(name string) bool {
	b, _ := p[name].(bool)
	return b
}

// Has reports whether the parameter is present and not nil.
func (p Params) Has(name string) bool {
	v, ok := p[name]
	return ok && v != nil
}

// Value is a single typed attribute.
type Value interface {
	Kind() Kind
	// Get returns nil or a value of the declared kind. Collections return a copy.
	Get() any
	// Set converts raw to the declared kind, storing nil when it cannot.
	Set(raw any)
	IsNil() bool
}

// Committer is implemented by values carrying change metadata that can be
// reset to describe the current state as the loaded state.
type Committer interface {
	Commit()
}

// Numeric is implemented by Integer, Float and Decimal.
type Numeric interface {
	Value
	Committer
	// Increment adds amount to the value and to the cumulative delta.
	// A nil amount increments by one.
	Increment(amount any) error
	// IncrementedBy returns the sum of increments since the last Set.
	IncrementedBy() any
}

// ChangeKind classifies the way a collection was changed since load.
type ChangeKind string

const (
	ChangedBySetter   ChangeKind = "setter"
	ChangedByModifier ChangeKind = "modifier"
)

// Collection is implemented by Array and Set.
type Collection interface {
	Value
	Committer
	Push(values ...any)
	Pull(values ...any)
	Added() []any
	Removed() []any
	InitialValue() []any
	ChangedBy() ChangeKind
	Contains(v any) bool
	Len() int
}
