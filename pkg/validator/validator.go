package validator

import (
	"sync"

	"github.com/dmitrymomot/docmodel/pkg/types"
)

// Built-in validator names.
const (
	Presence   = "presence"
	Absence    = "absence"
	Length     = "length"
	Format     = "format"
	Inclusion  = "inclusion"
	Exclusion  = "exclusion"
	ValueMatch = "value_match"
)

// ParamMessage overrides the formatted message of any failing validator.
const ParamMessage = "message"

// ErrorCode identifies the reason of a failure.
type ErrorCode string

const (
	CodeMissing     ErrorCode = "missing"
	CodeEmpty       ErrorCode = "empty"
	CodePresent     ErrorCode = "present"
	CodeShort       ErrorCode = "short"
	CodeLong        ErrorCode = "long"
	CodeWrongFormat ErrorCode = "wrong_format"
	CodeNotInRange  ErrorCode = "not_in_range"
	CodeNotIncluded ErrorCode = "not_included"
	CodeInRange     ErrorCode = "in_range"
	CodeExcluded    ErrorCode = "excluded"
	CodeNoMatch     ErrorCode = "no_match"
)

// Result is the outcome of one validation.
type Result struct {
	Valid             bool
	Code              ErrorCode
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Pass is the result of a successful check.
func Pass() Result { return Result{Valid: true} }

// Fail builds a failing result.
func Fail(code ErrorCode, message, translationKey string, values map[string]any) Result {
	return Result{
		Code:              code,
		Message:           message,
		TranslationKey:    translationKey,
		TranslationValues: values,
	}
}

// Validator evaluates one rule.
type Validator interface {
	Name() string
	// Arity is the number of values Validate expects.
	Arity() int
	// Prepare checks and normalizes parameters. It runs once, when a
	// validation is assembled.
	Prepare(params types.Params) (types.Params, error)
	// Validate evaluates prepared parameters against values.
	Validate(params types.Params, values ...any) Result
}

// Check enforces the validator's arity, runs it and applies a custom
// message from params. A custom message drops the translation metadata.
func Check(v Validator, params types.Params, values ...any) (Result, error) {
	if len(values) != v.Arity() {
		return Result{}, &ArityError{Validator: v.Name(), Want: v.Arity(), Got: len(values)}
	}
	res := v.Validate(params, values...)
	if !res.Valid {
		if msg, ok := params[ParamMessage].(string); ok && msg != "" {
			res.Message = msg
			res.TranslationKey, res.TranslationValues = "", nil
		}
	}
	return res, nil
}

// Registry maps names to validators.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// NewRegistry returns a registry holding the built-in validators.
func NewRegistry() *Registry {
	r := &Registry{validators: make(map[string]Validator)}
	for _, v := range []Validator{
		presence{}, absence{}, length{}, format{}, inclusion{}, exclusion{}, valueMatch{},
	} {
		r.validators[v.Name()] = v
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a custom validator.
func (r *Registry) Register(v Validator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.validators[v.Name()]; ok {
		return ErrDuplicateValidator
	}
	r.validators[v.Name()] = v
	return nil
}

// Lookup resolves a validator by name.
func (r *Registry) Lookup(name string) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[name]
	if !ok {
		return nil, &UnknownValidatorError{Name: name}
	}
	return v, nil
}

// MustLookup is like Lookup but panics for unknown names.
func (r *Registry) MustLookup(name string) Validator {
	v, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return v
}
