package types

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Boolean holds nil, true or false. Any non-nil input that is not a bool is
// true.
type Boolean struct {
	value bool
	valid bool
}

// Kind returns KindBoolean.
func (b *Boolean) Kind() Kind { return KindBoolean }

// IsNil reports whether the value is nil.
func (b *Boolean) IsNil() bool { return !b.valid }

// Bool returns the value and whether it is set.
func (b *Boolean) Bool() (bool, bool) { return b.value, b.valid }

// Get returns a bool or nil.
func (b *Boolean) Get() any {
	if !b.valid {
		return nil
	}
	return b.value
}

// Set stores bools as is. Other non-nil input is true.
func (b *Boolean) Set(raw any) {
	raw = unwrap(raw)
	switch v := raw.(type) {
	case bool:
		b.value, b.valid = v, true
	case *bool:
		if v == nil {
			b.value, b.valid = false, false
			return
		}
		b.value, b.valid = *v, true
	default:
		b.value, b.valid = !isNil(raw), !isNil(raw)
	}
}

// String holds nil or the textual representation of its input.
type String struct {
	value string
	valid bool
}

// Kind returns KindString.
func (s *String) Kind() Kind { return KindString }

// IsNil reports whether the value is nil.
func (s *String) IsNil() bool { return !s.valid }

// Text returns the value and whether it is set.
func (s *String) Text() (string, bool) { return s.value, s.valid }

// Get returns a string or nil.
func (s *String) Get() any {
	if !s.valid {
		return nil
	}
	return s.value
}

// Set stores the textual form of raw; nil stays nil.
func (s *String) Set(raw any) {
	raw = unwrap(raw)
	if isNil(raw) {
		s.value, s.valid = "", false
		return
	}
	s.value, s.valid = toString(raw), true
}

// Time holds nil or a time.Time. Numbers are unix timestamps in seconds and
// strings go through a lenient date parser.
type Time struct {
	value time.Time
	valid bool
}

// Kind returns KindTime.
func (t *Time) Kind() Kind { return KindTime }

// IsNil reports whether the value is nil.
func (t *Time) IsNil() bool { return !t.valid }

// Time returns the value and whether it is set.
func (t *Time) Time() (time.Time, bool) { return t.value, t.valid }

// Get returns a time.Time or nil.
func (t *Time) Get() any {
	if !t.valid {
		return nil
	}
	return t.value
}

// Set converts times, bson.DateTime, unix seconds and date strings.
func (t *Time) Set(raw any) {
	t.value, t.valid = toTime(unwrap(raw))
}

// ObjectID holds nil or a bson.ObjectID. Only syntactically legal hex
// strings are parsed.
type ObjectID struct {
	value bson.ObjectID
	valid bool
}

// Kind returns KindObjectID.
func (o *ObjectID) Kind() Kind { return KindObjectID }

// IsNil reports whether the value is nil.
func (o *ObjectID) IsNil() bool { return !o.valid }

// ObjectID returns the value and whether it is set.
func (o *ObjectID) ObjectID() (bson.ObjectID, bool) { return o.value, o.valid }

// Get returns a bson.ObjectID or nil.
func (o *ObjectID) Get() any {
	if !o.valid {
		return nil
	}
	return o.value
}

// Set accepts bson.ObjectID values and 24-character hex strings.
func (o *ObjectID) Set(raw any) {
	o.value, o.valid = toObjectID(unwrap(raw))
}
