package types

import "reflect"

// Elements are compared with reflect.DeepEqual: int(1) and int64(1) differ.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	copy(out, s)
	return out
}

func indexOf(s []any, v any) int {
	for i, e := range s {
		if equal(e, v) {
			return i
		}
	}
	return -1
}

func contains(s []any, v any) bool {
	return indexOf(s, v) >= 0
}

func count(s []any, v any) int {
	n := 0
	for _, e := range s {
		if equal(e, v) {
			n++
		}
	}
	return n
}

func removeAt(s []any, i int) []any {
	return append(s[:i:i], s[i+1:]...)
}

// removeAll drops every occurrence of v, keeping a non-nil result for
// non-nil input.
func removeAll(s []any, v any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, 0, len(s))
	for _, e := range s {
		if !equal(e, v) {
			out = append(out, e)
		}
	}
	return out
}

func dedupe(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, 0, len(s))
	for _, e := range s {
		if !contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}

func orderedEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// multisetEqual compares ignoring order but respecting multiplicity.
func multisetEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	rest := cloneSlice(b)
	for _, e := range a {
		i := indexOf(rest, e)
		if i < 0 {
			return false
		}
		rest = removeAt(rest, i)
	}
	return true
}

func setEqual(a, b []any) bool {
	for _, e := range a {
		if !contains(b, e) {
			return false
		}
	}
	for _, e := range b {
		if !contains(a, e) {
			return false
		}
	}
	return true
}

// subtractOnce removes one occurrence of every element of sub from s.
// It reports false when an element of sub is missing from s.
func subtractOnce(s, sub []any) ([]any, bool) {
	out := cloneSlice(s)
	for _, e := range sub {
		i := indexOf(out, e)
		if i < 0 {
			return nil, false
		}
		out = removeAt(out, i)
	}
	return out, true
}
