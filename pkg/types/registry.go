package types

import (
	"sync"
)

// Type describes a value kind: its parameter defaults, its parent in the
// type ancestry and the constructor producing empty values.
type Type struct {
	kind    Kind
	parent  *Type
	params  Params
	factory func() Value
}

// NewType creates a type. A nil factory makes the type abstract: it can be a
// parent of other types but cannot be registered or instantiated.
func NewType(kind Kind, parent *Type, params Params, factory func() Value) *Type {
	return &Type{
		kind:    kind,
		parent:  parent,
		params:  params,
		factory: factory,
	}
}

// Kind returns the kind the type is registered under.
func (t *Type) Kind() Kind { return t.kind }

// Parent returns the ancestor type, nil for the root.
func (t *Type) Parent() *Type { return t.parent }

// Abstract reports whether the type has no constructor.
func (t *Type) Abstract() bool { return t.factory == nil }

// Params returns the parameter defaults merged across the ancestry.
// The closest ancestor wins on conflicting names.
func (t *Type) Params() Params {
	var chain []*Type
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	out := Params{}
	for i := len(chain) - 1; i >= 0; i-- {
		out = out.Merge(chain[i].params)
	}
	return out
}

// IsA reports whether t is kind or descends from it.
func (t *Type) IsA(kind Kind) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur.kind == kind {
			return true
		}
	}
	return false
}

// Create builds a value from raw and marks it as loaded, so collections use
// the result as their initial value. Create panics for abstract types.
func (t *Type) Create(raw any) Value {
	if t.factory == nil {
		panic("types: cannot create a value of abstract type " + string(t.kind))
	}
	v := t.factory()
	v.Set(raw)
	if c, ok := v.(Committer); ok {
		c.Commit()
	}
	return v
}

// Abstract ancestors of the built-in kinds.
var (
	BaseType = NewType(KindBase, nil, Params{
		ParamRequired: false,
		ParamDefault:  nil,
	}, nil)

	NumericType = NewType(KindNumeric, BaseType, Params{
		ParamIn:    nil,
		ParamNotIn: nil,
	}, nil)

	CollectionType = NewType(KindCollection, BaseType, Params{
		ParamDefault: EmptyCollection,
		ParamLength:  nil,
	}, nil)
)

// EmptyCollection is the default of collection kinds: every record gets its
// own empty container.
func EmptyCollection() any { return []any{} }

// Registry maps kinds to types.
type Registry struct {
	mu    sync.RWMutex
	types map[Kind]*Type
	order []Kind
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[Kind]*Type)}
	for _, t := range builtins() {
		r.register(t)
	}
	return r
}

func builtins() []*Type {
	return []*Type{
		NewType(KindBoolean, BaseType, nil, func() Value { return &Boolean{} }),
		NewType(KindString, BaseType, Params{
			ParamLength: nil,
			ParamFormat: nil,
			ParamIn:     nil,
			ParamNotIn:  nil,
		}, func() Value { return &String{} }),
		NewType(KindInteger, NumericType, nil, func() Value { return &Integer{} }),
		NewType(KindFloat, NumericType, nil, func() Value { return &Float{} }),
		NewType(KindDecimal, NumericType, nil, func() Value { return &Decimal{} }),
		NewType(KindTime, BaseType, Params{
			ParamIn: nil,
		}, func() Value { return &Time{} }),
		NewType(KindObjectID, BaseType, nil, func() Value { return &ObjectID{} }),
		NewType(KindArray, CollectionType, nil, func() Value { return &Array{} }),
		NewType(KindSet, CollectionType, nil, func() Value { return &Set{} }),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a custom kind.
func (r *Registry) Register(t *Type) error {
	if t == nil || t.Abstract() {
		return ErrAbstractType
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[t.kind]; ok {
		return ErrDuplicateType
	}
	r.register(t)
	return nil
}

func (r *Registry) register(t *Type) {
	r.types[t.kind] = t
	r.order = append(r.order, t.kind)
}

// Lookup resolves a kind. Unregistered kinds yield *UnknownTypeError.
func (r *Registry) Lookup(kind Kind) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[kind]
	if !ok {
		return nil, &UnknownTypeError{Kind: kind}
	}
	return t, nil
}

// Kinds lists registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

// MustLookup is like Lookup but panics for unknown kinds.
func (r *Registry) MustLookup(kind Kind) *Type {
	t, err := r.Lookup(kind)
	if err != nil {
		panic(err)
	}
	return t
}
