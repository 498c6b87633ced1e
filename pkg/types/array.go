package types

// Array is an ordered collection that allows duplicates.
//
// Added and Removed are multisets relative to the initial value: pushing an
// element cancels one pending removal of it, otherwise it is recorded as
// added; pulling an element removes every occurrence, and the occurrences
// that were not added since load are recorded as removed.
type Array struct {
	value   []any
	initial []any
	added   []any
	removed []any
}

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// IsNil reports whether the array holds no value at all.
func (a *Array) IsNil() bool { return a.value == nil }

// Len returns the number of elements, duplicates included.
func (a *Array) Len() int { return len(a.value) }

// Contains reports whether v occurs at least once.
func (a *Array) Contains(v any) bool { return contains(a.value, v) }

// Get returns a copy of the elements or nil.
func (a *Array) Get() any {
	if a.value == nil {
		return nil
	}
	return cloneSlice(a.value)
}

// Set adopts any slice or array by value and forgets pending pushes and pulls.
func (a *Array) Set(raw any) {
	a.value, _ = toSlice(unwrap(raw))
	a.added, a.removed = nil, nil
}

// Push appends values in order.
func (a *Array) Push(values ...any) {
	if a.value == nil {
		a.value = []any{}
	}
	for _, v := range values {
		a.value = append(a.value, v)
		if i := indexOf(a.removed, v); i >= 0 {
			a.removed = removeAt(a.removed, i)
			continue
		}
		a.added = append(a.added, v)
	}
}

// Pull removes every occurrence of each value.
func (a *Array) Pull(values ...any) {
	for _, v := range values {
		present := count(a.value, v)
		if present == 0 {
			continue
		}
		pending := count(a.added, v)
		a.value = removeAll(a.value, v)
		a.added = removeAll(a.added, v)
		for range present - pending {
			a.removed = append(a.removed, v)
		}
	}
}

// Added returns the elements pushed since load.
func (a *Array) Added() []any { return cloneSlice(a.added) }

// Removed returns the loaded elements pulled since load.
func (a *Array) Removed() []any { return cloneSlice(a.removed) }

// InitialValue returns the elements as loaded or last committed.
func (a *Array) InitialValue() []any { return cloneSlice(a.initial) }

// ChangedBy reports ChangedByModifier when removing the added elements from
// the current value and adding back the removed ones yields the initial
// value, compared as multisets.
func (a *Array) ChangedBy() ChangeKind {
	if a.initial == nil || a.value == nil || orderedEqual(a.value, a.initial) {
		return ChangedBySetter
	}
	base, ok := subtractOnce(a.value, a.added)
	if !ok {
		return ChangedBySetter
	}
	base = append(base, a.removed...)
	if multisetEqual(base, a.initial) {
		return ChangedByModifier
	}
	return ChangedBySetter
}

// Commit makes the current value the initial one.
func (a *Array) Commit() {
	a.initial = cloneSlice(a.value)
	a.added, a.removed = nil, nil
}
