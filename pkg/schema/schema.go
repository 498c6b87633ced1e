package schema

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// Key is an immutable schema entry.
type Key struct {
	name   string
	alias  string
	typ    *types.Type
	params types.Params
}

// Name returns the attribute name used in code.
func (k *Key) Name() string { return k.name }

// Alias returns the storage identifier. It equals Name unless set.
func (k *Key) Alias() string { return k.alias }

// Type returns the resolved value type.
func (k *Key) Type() *types.Type { return k.typ }

// Kind is shorthand for Type().Kind().
func (k *Key) Kind() types.Kind { return k.typ.Kind() }

// Required reports the required parameter.
func (k *Key) Required() bool { return k.params.Bool(types.ParamRequired) }

// Params returns a copy of the merged parameter bag.
func (k *Key) Params() types.Params { return types.Params{}.Merge(k.params) }

// Param returns a single parameter; nil when unset.
func (k *Key) Param(name string) any { return k.params[name] }

// Aliased reports whether the storage identifier differs from the name.
func (k *Key) Aliased() bool { return k.alias != k.name }

// Default evaluates the key's default. A function taking no arguments and
// returning a single value, such as bson.NewObjectID or time.Now, is called
// for every record.
func (k *Key) Default() any {
	switch d := k.params[types.ParamDefault].(type) {
	case nil:
		return nil
	case func() any:
		return d()
	default:
		fn := reflect.ValueOf(d)
		if fn.Kind() != reflect.Func || fn.IsNil() {
			return d
		}
		if t := fn.Type(); t.NumIn() != 0 || t.NumOut() != 1 {
			return d
		}
		return fn.Call(nil)[0].Interface()
	}
}

// validDefault rejects function defaults that Default cannot call.
func validDefault(d any) bool {
	fn := reflect.ValueOf(d)
	if fn.Kind() != reflect.Func {
		return true
	}
	t := fn.Type()
	return !fn.IsNil() && t.NumIn() == 0 && t.NumOut() == 1
}

// Create builds a value for this key from raw input.
func (k *Key) Create(raw any) types.Value {
	return k.typ.Create(raw)
}

// Schema is an ordered, append-only set of keys.
type Schema struct {
	registry *types.Registry
	keys     []*Key
	byName   map[string]*Key
	byAlias  map[string]*Key
}

// New creates an empty schema.
func New(opts ...Option) *Schema {
	s := &Schema{
		registry: types.Default(),
		byName:   make(map[string]*Key),
		byAlias:  make(map[string]*Key),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Define appends a key. The name must not be an existing name or alias, and
// neither may the alias.
func (s *Schema) Define(name string, kind types.Kind, opts ...KeyOption) (*Key, error) {
	key, err := s.Prepare(name, kind, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Add(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Prepare builds and checks a key the way Define does without adding it.
func (s *Schema) Prepare(name string, kind types.Kind, opts ...KeyOption) (*Key, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	cfg := keyConfig{alias: name}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.alias == "" {
		cfg.alias = name
	}
	if err := s.check(name, cfg.alias); err != nil {
		return nil, err
	}
	if !validDefault(cfg.params[types.ParamDefault]) {
		return nil, fmt.Errorf("%w: key %q", ErrInvalidDefault, name)
	}

	typ, err := s.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return &Key{
		name:   name,
		alias:  cfg.alias,
		typ:    typ,
		params: typ.Params().Merge(cfg.params),
	}, nil
}

// Add appends a prepared key. Names are checked again since the schema may
// have grown after Prepare.
func (s *Schema) Add(key *Key) error {
	if err := s.check(key.name, key.alias); err != nil {
		return err
	}
	s.keys = append(s.keys, key)
	s.byName[key.name] = key
	s.byAlias[key.alias] = key
	return nil
}

func (s *Schema) check(name, alias string) error {
	if s.taken(name) {
		return &DuplicateKeyError{Name: name}
	}
	if alias != name && s.taken(alias) {
		return &DuplicateAliasError{Alias: alias}
	}
	return nil
}

// MustDefine is like Define but panics on definition errors.
func (s *Schema) MustDefine(name string, kind types.Kind, opts ...KeyOption) *Key {
	key, err := s.Define(name, kind, opts...)
	if err != nil {
		panic(err)
	}
	return key
}

func (s *Schema) taken(id string) bool {
	_, byName := s.byName[id]
	_, byAlias := s.byAlias[id]
	return byName || byAlias
}

// Key returns the key with the given canonical name.
func (s *Schema) Key(name string) (*Key, bool) {
	k, ok := s.byName[name]
	return k, ok
}

// ByAlias returns the key stored under alias.
func (s *Schema) ByAlias(alias string) (*Key, bool) {
	k, ok := s.byAlias[alias]
	return k, ok
}

// Resolve finds a key by alias first, then by name.
func (s *Schema) Resolve(id string) (*Key, bool) {
	if k, ok := s.byAlias[id]; ok {
		return k, true
	}
	return s.Key(id)
}

// Keys returns the keys in definition order.
func (s *Schema) Keys() []*Key {
	out := make([]*Key, len(s.keys))
	copy(out, s.keys)
	return out
}

// Names returns the canonical names in definition order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.keys))
	for i, k := range s.keys {
		out[i] = k.name
	}
	return out
}

// Len returns the number of keys.
func (s *Schema) Len() int { return len(s.keys) }

// Registry returns the type registry keys are resolved against.
func (s *Schema) Registry() *types.Registry { return s.registry }
