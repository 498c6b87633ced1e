package attributes

import (
	"reflect"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/docmodel/pkg/schema"
	"github.com/dmitrymomot/docmodel/pkg/types"
)

// Change is a [before, current] pair.
type Change struct {
	Before any
	After  any
}

// Store is the attribute map of a single document.
type Store struct {
	schema      *schema.Schema
	values      map[string]types.Value
	newKeys     []string
	byName      map[string]bool
	removedKeys []string
	changes     *ChangeSet
}

// Build creates the attributes of a document from raw input keyed by alias
// or name.
func Build(s *schema.Schema, raw map[string]any) *Store {
	st := &Store{
		schema:  s,
		values:  make(map[string]types.Value, s.Len()),
		byName:  make(map[string]bool),
		changes: newChangeSet(),
	}

	for _, key := range s.Keys() {
		if v, ok := raw[key.Alias()]; ok {
			st.values[key.Name()] = key.Create(v)
			continue
		}
		if v, ok := raw[key.Name()]; ok {
			st.values[key.Name()] = key.Create(v)
			st.newKeys = append(st.newKeys, key.Name())
			st.byName[key.Name()] = true
			continue
		}
		st.values[key.Name()] = key.Create(key.Default())
		st.newKeys = append(st.newKeys, key.Name())
	}

	for id := range raw {
		if _, ok := s.Resolve(id); !ok {
			st.removedKeys = append(st.removedKeys, id)
		}
	}
	slices.Sort(st.removedKeys)

	return st
}

// Schema returns the schema the store was built from.
func (s *Store) Schema() *schema.Schema { return s.schema }

// NewKeys lists keys that were filled from their default or supplied under
// their name, in schema order.
func (s *Store) NewKeys() []string { return slices.Clone(s.newKeys) }

// SuppliedByName reports whether the input held the key under its name
// rather than its alias.
func (s *Store) SuppliedByName(name string) bool { return s.byName[name] }

// RemovedKeys lists input identifiers matching no key, sorted.
func (s *Store) RemovedKeys() []string { return slices.Clone(s.removedKeys) }

// Value returns the typed value of a key.
func (s *Store) Value(name string) (types.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Read returns the current value of a key.
func (s *Store) Read(name string) (any, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, unknownAttribute(name)
	}
	return v.Get(), nil
}

// Write assigns raw to a key, converting it to the key's type.
func (s *Store) Write(name string, raw any) error {
	v, ok := s.values[name]
	if !ok {
		return unknownAttribute(name)
	}
	s.track(name, v, func() { v.Set(raw) })
	return nil
}

// Push appends values to a collection key.
func (s *Store) Push(name string, values ...any) error {
	c, err := s.collection(name)
	if err != nil {
		return err
	}
	s.track(name, c, func() { c.Push(values...) })
	return nil
}

// Pull removes values from a collection key.
func (s *Store) Pull(name string, values ...any) error {
	c, err := s.collection(name)
	if err != nil {
		return err
	}
	s.track(name, c, func() { c.Pull(values...) })
	return nil
}

// Increment adds amount (nil means one) to a numeric key.
func (s *Store) Increment(name string, amount any) error {
	v, ok := s.values[name]
	if !ok {
		return unknownAttribute(name)
	}
	n, ok := v.(types.Numeric)
	if !ok {
		return ErrNotNumeric
	}
	var err error
	s.track(name, n, func() { err = n.Increment(amount) })
	return err
}

func (s *Store) collection(name string) (types.Collection, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, unknownAttribute(name)
	}
	c, ok := v.(types.Collection)
	if !ok {
		return nil, ErrNotCollection
	}
	return c, nil
}

// track runs mutate and records the previous value when it changed.
func (s *Store) track(name string, v types.Value, mutate func()) {
	before := v.Get()
	mutate()
	if !Same(before, v.Get()) {
		s.changes.record(name, before)
	}
}

// Restore reverts a changed key to its load-time value.
func (s *Store) Restore(name string) error {
	v, ok := s.values[name]
	if !ok {
		return unknownAttribute(name)
	}
	before, changed := s.changes.Before(name)
	if !changed {
		return nil
	}
	v.Set(before)
	s.changes.forget(name)
	return nil
}

// ChangeSet exposes the change history.
func (s *Store) ChangeSet() *ChangeSet { return s.changes }

// Changed lists the keys changed since load.
func (s *Store) Changed() []string { return s.changes.Names() }

// IsChanged reports whether a key changed since load.
func (s *Store) IsChanged(name string) bool { return s.changes.Has(name) }

// ChangedAttributes maps changed keys to their load-time values.
func (s *Store) ChangedAttributes() map[string]any { return s.changes.Attributes() }

// Changes maps changed keys to [before, current] pairs. It returns nil when
// nothing changed.
func (s *Store) Changes() map[string]Change {
	if s.changes.Len() == 0 {
		return nil
	}
	out := make(map[string]Change, s.changes.Len())
	for _, name := range s.changes.Names() {
		before, _ := s.changes.Before(name)
		out[name] = Change{Before: before, After: s.values[name].Get()}
	}
	return out
}

// Attributes returns the current values keyed by name.
func (s *Store) Attributes() map[string]any {
	out := make(map[string]any, len(s.values))
	for name, v := range s.values {
		out[name] = v.Get()
	}
	return out
}

// Commit marks the current state as the loaded state: the change set, new
// and removed keys are cleared and values reset their change metadata.
func (s *Store) Commit() {
	for _, v := range s.values {
		if c, ok := v.(types.Committer); ok {
			c.Commit()
		}
	}
	s.changes.Clear()
	s.newKeys = nil
	s.removedKeys = nil
	s.byName = make(map[string]bool)
}

// Same compares attribute values. Decimals and times compare by value, the
// rest with reflect.DeepEqual.
func Same(a, b any) bool {
	switch x := a.(type) {
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		return ok && x.Equal(y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	return reflect.DeepEqual(a, b)
}
