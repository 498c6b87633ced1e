package types

// Set is an unordered collection without duplicates. Insertion order is
// kept for presentation only.
type Set struct {
	value   []any
	initial []any
	added   []any
	removed []any
}

// Kind returns KindSet.
func (s *Set) Kind() Kind { return KindSet }

// IsNil reports whether the set holds no value at all.
func (s *Set) IsNil() bool { return s.value == nil }

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.value) }

// Contains reports whether v is an element.
func (s *Set) Contains(v any) bool { return contains(s.value, v) }

// Get returns a copy of the elements in insertion order, or nil.
func (s *Set) Get() any {
	if s.value == nil {
		return nil
	}
	return cloneSlice(s.value)
}

// Set adopts any slice or array, dropping duplicates, and forgets pending
// pushes and pulls.
func (s *Set) Set(raw any) {
	v, _ := toSlice(unwrap(raw))
	s.value = dedupe(v)
	s.added, s.removed = nil, nil
}

// Push inserts values. Re-adding a present element is a no-op.
func (s *Set) Push(values ...any) {
	if s.value == nil {
		s.value = []any{}
	}
	for _, v := range values {
		if contains(s.value, v) {
			continue
		}
		s.value = append(s.value, v)
		if i := indexOf(s.removed, v); i >= 0 {
			s.removed = removeAt(s.removed, i)
		}
		if !contains(s.initial, v) && !contains(s.added, v) {
			s.added = append(s.added, v)
		}
	}
}

// Pull removes values. Absent values are ignored.
func (s *Set) Pull(values ...any) {
	for _, v := range values {
		s.value = removeAll(s.value, v)
		s.added = removeAll(s.added, v)
		if contains(s.initial, v) && !contains(s.removed, v) {
			s.removed = append(s.removed, v)
		}
	}
}

// Added returns elements that were not loaded and have been pushed since.
func (s *Set) Added() []any { return cloneSlice(s.added) }

// Removed returns loaded elements that have been pulled since.
func (s *Set) Removed() []any { return cloneSlice(s.removed) }

// InitialValue returns the elements as loaded or last committed.
func (s *Set) InitialValue() []any { return cloneSlice(s.initial) }

// ChangedBy reports ChangedByModifier when the pending additions and
// removals alone explain the difference from the initial value.
func (s *Set) ChangedBy() ChangeKind {
	if s.initial == nil || s.value == nil || setEqual(s.value, s.initial) {
		return ChangedBySetter
	}
	base := cloneSlice(s.value)
	for _, v := range s.added {
		base = removeAll(base, v)
	}
	for _, v := range s.removed {
		if !contains(base, v) {
			base = append(base, v)
		}
	}
	if setEqual(base, s.initial) {
		return ChangedByModifier
	}
	return ChangedBySetter
}

// Commit makes the current elements the initial ones.
func (s *Set) Commit() {
	s.initial = cloneSlice(s.value)
	s.added, s.removed = nil, nil
}
