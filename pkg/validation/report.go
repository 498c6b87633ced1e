package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/docmodel/pkg/validator"
)

// ModelKey is the report key of failures spanning several attributes.
const ModelKey = "model"

// Failure is a single failed check.
type Failure struct {
	Validator string              `json:"validator"`
	Code      validator.ErrorCode `json:"error_code"`
	Message   string              `json:"message"`
	// Attributes is set for model-level failures only.
	Attributes []string `json:"attributes,omitempty"`

	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// Translator renders a translation key with named values.
type Translator interface {
	T(lang, key string, values map[string]any) string
}

// Report collects the failures of a record, keyed by attribute name or
// ModelKey. It is append-only until cleared.
type Report struct {
	entries map[string][]Failure
	keys    []string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{entries: make(map[string][]Failure)}
}

// Add appends a failure of validatorName for attrs. Several attributes are
// recorded under ModelKey together with the attribute list.
func (r *Report) Add(attrs []string, validatorName, message string, code validator.ErrorCode) {
	r.append(attrs, Failure{Validator: validatorName, Code: code, Message: message})
}

// Record appends a failing result of validatorName for attrs.
func (r *Report) Record(attrs []string, validatorName string, res validator.Result) {
	r.append(attrs, Failure{
		Validator:         validatorName,
		Code:              res.Code,
		Message:           res.Message,
		TranslationKey:    res.TranslationKey,
		TranslationValues: res.TranslationValues,
	})
}

func (r *Report) append(attrs []string, f Failure) {
	key := ModelKey
	switch len(attrs) {
	case 0:
	case 1:
		key = attrs[0]
	default:
		f.Attributes = slices.Clone(attrs)
	}
	if _, ok := r.entries[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = append(r.entries[key], f)
}

// Clear empties the report.
func (r *Report) Clear() {
	clear(r.entries)
	r.keys = nil
}

// List returns a copy of the failures by key.
func (r *Report) List() map[string][]Failure {
	out := make(map[string][]Failure, len(r.entries))
	for key, failures := range r.entries {
		out[key] = slices.Clone(failures)
	}
	return out
}

// Get returns the failures recorded under key.
func (r *Report) Get(key string) []Failure { return slices.Clone(r.entries[key]) }

// Has reports whether key has at least one failure.
func (r *Report) Has(key string) bool { return len(r.entries[key]) > 0 }

// IsEmpty reports whether nothing failed.
func (r *Report) IsEmpty() bool { return len(r.entries) == 0 }

// Keys lists the keys with failures in the order they were first recorded.
func (r *Report) Keys() []string { return slices.Clone(r.keys) }

// Len is the total number of failures.
func (r *Report) Len() int {
	n := 0
	for _, failures := range r.entries {
		n += len(failures)
	}
	return n
}

// Messages maps keys to their failure messages.
func (r *Report) Messages() map[string][]string {
	return r.render(func(f Failure) string { return f.Message })
}

// Localize maps keys to translated failure messages. Failures without a
// translation key keep their message.
func (r *Report) Localize(t Translator, lang string) map[string][]string {
	return r.render(func(f Failure) string {
		if t == nil || f.TranslationKey == "" {
			return f.Message
		}
		return t.T(lang, f.TranslationKey, f.TranslationValues)
	})
}

func (r *Report) render(msg func(Failure) string) map[string][]string {
	out := make(map[string][]string, len(r.entries))
	for key, failures := range r.entries {
		list := make([]string, len(failures))
		for i, f := range failures {
			list[i] = msg(f)
		}
		out[key] = list
	}
	return out
}

// Err returns nil for an empty report and an *Error otherwise.
func (r *Report) Err() error {
	if r.IsEmpty() {
		return nil
	}
	return &Error{Failures: r.List(), keys: r.Keys()}
}

// Error is a snapshot of a failed report usable as a Go error.
type Error struct {
	Failures map[string][]Failure
	keys     []string
}

func (e *Error) Error() string {
	keys := e.keys
	if keys == nil {
		keys = slices.Sorted(maps.Keys(e.Failures))
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if failures := e.Failures[key]; len(failures) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", key, failures[0].Message))
		}
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }
